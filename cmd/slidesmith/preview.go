package main

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ByLCY/slidesmith/deck"
	canvasrenderer "github.com/ByLCY/slidesmith/renderer/canvas"
	"github.com/ByLCY/slidesmith/renderer/pptx"
)

func newPreviewCmd(flags *rootFlags) *cobra.Command {
	var (
		deckPath string
		format   string
		output   string
	)

	cmd := &cobra.Command{
		Use:   "preview",
		Short: "把 deck 渲染为 PDF 或逐页 PNG",
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
				output = app.cfg.Output.Preview
			}

			switch strings.ToLower(format) {
			case "pdf":
				if output == "" {
					output = replaceExt(app.cfg.Output.Path, ".pdf")
				}
				opts := canvasrenderer.Options{Fonts: map[string]canvasrenderer.Resource{}}
				for family, path := range app.cfg.Fonts {
					opts.Fonts[family] = canvasrenderer.Resource{Path: path}
				}
				surface, err := canvasrenderer.New(app.theme.Canvas(), opts)
				if err != nil {
					return err
				}
				if err := surface.CheckFonts(app.theme); err != nil {
					return err
				}
				if _, err := deck.New(surface, src, app.builderOptions(bannerNotifier(cmd.OutOrStdout(), output))).Generate(cmd.Context()); err != nil {
					return err
				}
				if err := surface.Save(output); err != nil {
					return err
				}
			case "png":
				if output == "" {
					output = replaceExt(app.cfg.Output.Path, "_%d.png")
				}
				if !strings.Contains(output, "%d") {
					output = replaceExt(output, "_%d"+filepath.Ext(output))
				}
				surface := pptx.New(app.theme)
				if _, err := deck.New(surface, src, app.builderOptions(bannerNotifier(cmd.OutOrStdout(), output))).Generate(cmd.Context()); err != nil {
					return err
				}
				if err := surface.SaveImages(output, app.cfg.Output.ImageWidth, app.fontDirs()); err != nil {
					return fmt.Errorf("渲染图片失败: %w", err)
				}
			default:
				return fmt.Errorf("不支持的预览格式 %q（可选 pdf、png）", format)
			}

			app.log.With("path", output).With("format", format).Info("已写入预览")
			return nil
		},
	}

	cmd.Flags().StringVar(&deckPath, "deck", "", "deck 文件路径，默认使用配置或内置营业资料")
	cmd.Flags().StringVar(&format, "format", "pdf", "预览格式：pdf|png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "输出路径，png 需包含 %d")

	return cmd
}

func replaceExt(path, ext string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + ext
}
