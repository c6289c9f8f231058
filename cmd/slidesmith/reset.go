package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ByLCY/slidesmith/deck"
	"github.com/ByLCY/slidesmith/renderer/pptx"
)

func newResetCmd(flags *rootFlags) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "reset <file.pptx>",
		Short: "删除文稿中的全部幻灯片",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := flags.load(cmd)
			if err != nil {
				return err
			}
			surface, err := pptx.Open(args[0], app.theme)
			if err != nil {
				return err
			}
			removed := surface.SlideCount()
			if err := deck.New(surface, nil, app.builderOptions(nil)).Reset(cmd.Context()); err != nil {
				return err
			}

			if output == "" {
				output = args[0]
			}
			if err := surface.Save(output); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), accentStyle.Render(fmt.Sprintf("已删除 %d 张幻灯片", removed)))
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "输出路径，默认覆盖原文件")

	return cmd
}
