package layout

// BuildOptions 配置 deck 文件解释阶段的依赖。
type BuildOptions struct {
	// Theme 为空时使用 DefaultTheme。
	Theme *Theme
	// StrictPlaceholders 为 true 时，未能解析的 ${...} 占位符视为错误。
	StrictPlaceholders bool
}

func (o BuildOptions) theme() Theme {
	if o.Theme != nil {
		return *o.Theme
	}
	return DefaultTheme()
}
