package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ByLCY/slidesmith/deck"
	"github.com/ByLCY/slidesmith/layout"
	"github.com/ByLCY/slidesmith/renderer/record"
)

func newInspectCmd(flags *rootFlags) *cobra.Command {
	var (
		deckPath  string
		debugPath string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "在内存中生成 deck 并列出每页的绘制调用",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := flags.load(cmd)
			if err != nil {
				return err
			}
			src, err := app.source(deckPath)
			if err != nil {
				return err
			}

			surface := record.New(0)
			builder := deck.New(surface, src, app.builderOptions(bannerNotifier(cmd.OutOrStdout(), "")))
			d, err := builder.Resolve()
			if err != nil {
				return err
			}
			if debugPath != "" {
				if err := layout.WriteDebugJSON(d, debugPath); err != nil {
					return fmt.Errorf("写入调试输出失败: %w", err)
				}
				app.log.With("path", debugPath).Debug("已写入布局调试信息")
			}

			if _, err := builder.Generate(cmd.Context()); err != nil {
				return err
			}
			names := make([]string, len(d.Slides))
			for i, s := range d.Slides {
				names[i] = s.Name
			}
			fmt.Fprintln(cmd.OutOrStdout(), slideTable(names, surface.Slides()))
			return nil
		},
	}

	cmd.Flags().StringVar(&deckPath, "deck", "", "deck 文件路径，默认使用配置或内置营业资料")
	cmd.Flags().StringVar(&debugPath, "debug", "", "把解析后的布局写成 JSON")

	return cmd
}
