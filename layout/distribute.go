package layout

// Distribute 计算 n 个宽度为 w、间距为 gap 的元素在 [origin, origin+span) 区间内
// 水平居中时各自的左侧坐标。总宽超出 span 时向两侧对称溢出，不做裁剪。
// 剩余宽度为奇数时除法向零截断，多出的 1 EMU 总落在右侧。
func Distribute(n int, w, gap, origin, span EMU) ([]EMU, error) {
	if n <= 0 {
		return nil, preconditionf("distribute", "元素数量必须为正数，实际 %d", n)
	}
	if w < 0 || gap < 0 {
		return nil, preconditionf("distribute", "宽度与间距不能为负 (w=%d gap=%d)", w, gap)
	}
	total := EMU(n)*w + EMU(n-1)*gap
	start := origin + (span-total)/2
	xs := make([]EMU, n)
	for i := range xs {
		xs[i] = start + EMU(i)*(w+gap)
	}
	return xs, nil
}

// Segment 是两点之间的一条连线。
type Segment struct {
	From Point `json:"from"`
	To   Point `json:"to"`
}

// Connectors 返回分布行中相邻元素之间的水平连线。
// 每条连线从前一个元素右边缘 +inset 开始，到后一个元素左边缘 -inset 结束。
func Connectors(xs []EMU, w EMU, y EMU, inset EMU) []Segment {
	if len(xs) < 2 {
		return nil
	}
	out := make([]Segment, 0, len(xs)-1)
	for i := 0; i+1 < len(xs); i++ {
		out = append(out, Segment{
			From: Point{X: xs[i] + w + inset, Y: y},
			To:   Point{X: xs[i+1] - inset, Y: y},
		})
	}
	return out
}
