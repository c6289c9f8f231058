package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/ByLCY/slidesmith/config"
	"github.com/ByLCY/slidesmith/deck"
	"github.com/ByLCY/slidesmith/decks/sales"
	"github.com/ByLCY/slidesmith/dsl"
	"github.com/ByLCY/slidesmith/layout"
	"github.com/ByLCY/slidesmith/logger"
)

const defaultConfigPath = "slidesmith.yaml"

type rootFlags struct {
	configPath string
	logLevel   string
	human      bool
	dataJSON   string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "slidesmith",
		Short:         "slidesmith 生成固定版式的演示文稿",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", defaultConfigPath, "配置文件路径（不存在时使用默认值）")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "", "日志级别：trace|debug|info|warn|error")
	cmd.PersistentFlags().BoolVar(&flags.human, "human", false, "输出便于阅读的日志")
	cmd.PersistentFlags().StringVar(&flags.dataJSON, "data", "", "绑定到 deck 的 JSON 数据，覆盖配置中的同名键")

	cmd.AddCommand(newGenerateCmd(flags))
	cmd.AddCommand(newResetCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newInspectCmd(flags))
	cmd.AddCommand(newVerifyCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// appContext 是各子命令共享的配置、主题与日志器。
type appContext struct {
	cfg   *config.Config
	theme layout.Theme
	log   *logger.Logger
}

func (f *rootFlags) load(cmd *cobra.Command) (*appContext, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}
	theme, err := cfg.BuildTheme()
	if err != nil {
		return nil, err
	}
	if f.dataJSON != "" {
		var extra map[string]any
		if err := json.Unmarshal([]byte(f.dataJSON), &extra); err != nil {
			return nil, fmt.Errorf("解析 --data JSON 失败: %w", err)
		}
		if cfg.Data == nil {
			cfg.Data = map[string]any{}
		}
		for k, v := range extra {
			cfg.Data[k] = v
		}
	}

	level := cfg.Log.Level
	if f.logLevel != "" {
		level = f.logLevel
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: f.human || cfg.Log.Human,
		Writer:        cmd.ErrOrStderr(),
	})
	if err != nil {
		return nil, fmt.Errorf("创建日志器失败: %w", err)
	}
	log = log.With("command", cmd.Name())
	log.With("config", f.configPath).Debug("已加载配置")
	return &appContext{cfg: cfg, theme: theme, log: log}, nil
}

// source 选择 deck 来源：显式指定的 deck 文件、配置中的 deck 文件，或内置营业资料。
func (a *appContext) source(deckPath string) (deck.Source, error) {
	if deckPath == "" {
		deckPath = a.cfg.Deck
	}
	if deckPath == "" {
		return sales.Source{Data: a.cfg.Data}, nil
	}
	file, err := os.Open(deckPath)
	if err != nil {
		return nil, fmt.Errorf("无法打开 deck 文件 %s: %w", deckPath, err)
	}
	defer file.Close()

	doc, err := dsl.Parse(file)
	if err != nil {
		return nil, fmt.Errorf("解析 deck 文件失败: %w", err)
	}
	return deck.DocumentSource{Doc: doc, Data: a.cfg.Data, Strict: a.cfg.Output.Strict}, nil
}

func (a *appContext) builderOptions(n deck.Notifier) deck.Options {
	theme := a.theme
	return deck.Options{Theme: &theme, Logger: a.log, Notifier: n}
}

// fontDirs 返回配置字体所在的目录，供 PNG 渲染查找字体。
func (a *appContext) fontDirs() []string {
	seen := map[string]struct{}{}
	var dirs []string
	for _, path := range a.cfg.Fonts {
		dir := filepath.Dir(path)
		if _, ok := seen[dir]; ok {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}
	return dirs
}
