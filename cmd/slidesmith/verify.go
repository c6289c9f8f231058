package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	tabpptx "github.com/tsawler/tabula/pptx"
)

func newVerifyCmd(flags *rootFlags) *cobra.Command {
	var expect int

	cmd := &cobra.Command{
		Use:   "verify <file.pptx>",
		Short: "读取生成的文稿并核对页数",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := flags.load(cmd)
			if err != nil {
				return err
			}
			r, err := tabpptx.Open(args[0])
			if err != nil {
				return fmt.Errorf("读取 %s 失败: %w", args[0], err)
			}
			defer r.Close()

			out := cmd.OutOrStdout()
			count := r.SlideCount()
			for i := 0; i < count; i++ {
				slide, err := r.Slide(i)
				if err != nil {
					return fmt.Errorf("读取第 %d 页失败: %w", i+1, err)
				}
				fmt.Fprintf(out, "%2d  %s", i+1, firstLine(slide))
				if n := len(slide.Tables); n > 0 {
					fmt.Fprint(out, detailStyle.Render(fmt.Sprintf("  [%d table]", n)))
				}
				fmt.Fprintln(out)
			}
			app.log.With("slides", count).Debug("已读取演示文稿")

			if expect > 0 && count != expect {
				return fmt.Errorf("页数不符: 期望 %d，实际 %d", expect, count)
			}
			fmt.Fprintln(out, accentStyle.Render(fmt.Sprintf("%d slides", count)))
			return nil
		},
	}

	cmd.Flags().IntVar(&expect, "expect", 0, "期望的页数，0 表示不检查")

	return cmd
}

func firstLine(s *tabpptx.Slide) string {
	if s.Title != "" {
		return s.Title
	}
	for _, line := range strings.Split(s.GetText(), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			return line
		}
	}
	return ""
}
