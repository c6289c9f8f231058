package main

import (
	"github.com/spf13/cobra"

	"github.com/ByLCY/slidesmith/deck"
	"github.com/ByLCY/slidesmith/renderer/pptx"
)

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	var (
		deckPath string
		into     string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "清空目标文稿并生成全部幻灯片",
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

			if output == "" {
				output = into
			}
			if output == "" {
				output = app.cfg.Output.Path
			}

			var surface *pptx.Surface
			if into != "" {
				surface, err = pptx.Open(into, app.theme)
			} else {
				surface = pptx.New(app.theme)
			}
			if err != nil {
				return err
			}

			builder := deck.New(surface, src, app.builderOptions(bannerNotifier(cmd.OutOrStdout(), output)))
			if _, err := builder.Generate(cmd.Context()); err != nil {
				return err
			}
			if err := surface.Save(output); err != nil {
				return err
			}
			app.log.With("path", output).Info("已写入演示文稿")
			return nil
		},
	}

	cmd.Flags().StringVar(&deckPath, "deck", "", "deck 文件路径，默认使用配置或内置营业资料")
	cmd.Flags().StringVar(&into, "into", "", "在已有的 .pptx 中重新生成")
	cmd.Flags().StringVarP(&output, "output", "o", "", "输出路径，默认取 --into 或配置中的 output.path")

	return cmd
}
