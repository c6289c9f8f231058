// Package sales 定义 20 页的 AI 社員营业资料。这里只有内容与坐标，
// 布局算法全部来自 layout 包。
package sales

import (
	"fmt"
	"strings"

	"github.com/ByLCY/slidesmith/binding"
	"github.com/ByLCY/slidesmith/layout"
)

// SlideCount 是该 deck 的固定页数。
const SlideCount = 20

// Source 生成营业资料 deck。Data 用于封面等处的 ${...} 占位符。
type Source struct {
	Data any
}

// geometry 是各页共用的画布尺寸。
type geometry struct {
	W, H, M, CW layout.EMU
}

type slideDef struct {
	name  string
	build func(sb *layout.SlideBuilder, g geometry, data any)
}

var definitions = []slideDef{
	{"cover", cover},
	{"pain", pain},
	{"whatis", whatIs},
	{"channels", channels},
	{"channel-detail", channelDetail},
	{"domains", domains},
	{"workflow", workflow},
	{"checkpoint", checkpoint},
	{"security", security},
	{"self-improve", selfImprove},
	{"case-a", caseA},
	{"case-b", caseB},
	{"case-c", caseC},
	{"comparison", comparison},
	{"pricing", pricing},
	{"steps", steps},
	{"partner", partner},
	{"tech", tech},
	{"roadmap", roadmap},
	{"cta", cta},
}

// Names 返回各页名称，顺序即生成顺序。
func Names() []string {
	out := make([]string, len(definitions))
	for i, d := range definitions {
		out[i] = d.name
	}
	return out
}

// Deck 实现 deck.Source。
func (s Source) Deck(theme layout.Theme) (*layout.Deck, error) {
	c := theme.Canvas()
	g := geometry{W: c.Width, H: c.Height, M: theme.Margin(), CW: theme.ContentWidth()}
	b := layout.NewBuilder(theme)

	d := &layout.Deck{
		Meta: layout.DocumentMeta{
			Title:    "AI社員 営業資料",
			Subject:  "AI社員 導入のご提案",
			Creator:  "slidesmith",
			Keywords: []string{"AI社員", "営業資料"},
		},
		Canvas: c,
	}
	for i, def := range definitions {
		sb := b.Slide(def.name)
		def.build(sb, g, s.Data)
		slide, err := sb.Done()
		if err != nil {
			return nil, fmt.Errorf("第 %d 页: %w", i+1, err)
		}
		d.Slides = append(d.Slides, slide)
	}
	return d, nil
}

// 常用文本样式。
func centered(size float64, color layout.ColorRef, bold bool) layout.TextOptions {
	return layout.TextOptions{FontSize: size, Color: color, Bold: layout.Bool(bold), Align: layout.AlignCenter}
}

func plain(size float64, color layout.ColorRef, bold bool) layout.TextOptions {
	return layout.TextOptions{FontSize: size, Color: color, Bold: layout.Bool(bold)}
}

func box(fill, color layout.ColorRef, size float64) layout.BoxOptions {
	return layout.BoxOptions{Fill: fill, Color: color, FontSize: size}
}

func lines(items ...string) string { return strings.Join(items, "\n") }

func cover(sb *layout.SlideBuilder, g geometry, data any) {
	sb.Background(layout.Navy)
	sb.Text("AI社員 導入のご提案", layout.R(g.M, 1200000, g.CW, 800000), layout.TextOptions{
		Font: layout.FontTitle, FontSize: 40, Bold: layout.Bool(true), Color: layout.White,
		Align: layout.AlignCenter, VAlign: layout.VAlignMiddle,
	})
	sb.Text("～ IQ150の即戦力を、月額で御社に。～", layout.R(g.M, 2100000, g.CW, 500000), layout.TextOptions{
		Font: layout.FontTitle, FontSize: 20, Color: layout.Orange, Align: layout.AlignCenter,
	})
	sb.Text(binding.Interpolate(lines(
		"対象: 年商10億〜100億円の成長企業",
		"提供: ${company|[貴社名]}",
		"日付: ${date|2026年2月}",
	), data), layout.R(g.M, 3400000, g.CW, 800000), centered(14, layout.LightGray, false))
}

func pain(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("御社、こんなお悩みありませんか？")
	sb.Table([][]string{
		{"お悩み", "よくある現状"},
		{"右腕がいない", "社長が営業も経理も全部やっている"},
		{"DXしたいが何から？", "SaaSは自社業務に合わない。SIerは高い"},
		{"人が採れない・辞める", "教えた人材が半年で退職。また一からやり直し"},
		{"Excelが限界", "顧客リスト・請求書・日報が全部バラバラのExcel"},
	}, layout.R(g.M, 800000, g.CW, 2600000))
	sb.Text("→ これ、全部「AI社員」が解決します。", layout.R(g.M, 3700000, g.CW, 500000), centered(22, layout.Orange, true))
}

func whatIs(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("AI社員とは？")
	sb.Text("「システムを入れるのではありません。IQ150のAI社員を紹介します。」",
		layout.R(g.M, 700000, g.CW, 400000), centered(14, layout.Navy, true))
	sb.Table([][]string{
		{"比較項目", "人間の社員", "SaaS", "SIer受託", "AI社員"},
		{"初期費用", "採用費50万〜", "0〜50万", "500万〜", "★ 0円"},
		{"月額コスト", "30万〜/人", "5万〜/ID", "保守費", "★ 20万〜"},
		{"業務適応", "教育に3ヶ月", "仕様に人が合わせる", "要件定義に半年", "★ 御社の業務を学習"},
		{"退職リスク", "あり", "—", "担当者交代", "★ 絶対に辞めない"},
		{"稼働時間", "8h/日", "24h", "—", "★ 24時間365日"},
		{"成長", "属人的", "バージョンアップ待ち", "追加発注", "★ 使うほど賢くなる"},
	}, layout.R(g.M, 1200000, g.CW, 3400000))
}

func channels(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("いつものツールから指示するだけ")
	sb.Text(lines(
		"新しいツールを覚える必要はありません。",
		"御社が今使っているツールから、AI社員に直接指示が出せます。",
	), layout.R(g.M, 750000, g.CW, 500000), centered(14, layout.DarkGray, false))

	names := []string{"Notion", "Slack", "Google Drive", "Chatwork"}
	const boxW, boxH, gap, y1 layout.EMU = 1700000, 500000, 200000, 1500000
	xs := sb.Row(len(names), boxW, gap)
	for i, x := range xs {
		sb.Box(names[i], layout.R(x, y1, boxW, boxH), box(layout.LightGray, layout.Navy, 14))
	}

	mid := g.W / 2
	sb.Arrow(mid, y1+boxH+50000, mid, y1+boxH+450000)
	sb.Box("AI社員エンジン\n（自動で設計・実装・テスト）", layout.R(mid-1500000, 2600000, 3000000, 600000), box(layout.Navy, layout.White, 16))
	sb.Arrow(mid, 3250000, mid, 3650000)
	sb.Box("ダッシュボードに成果物が届く", layout.R(mid-1500000, 3700000, 3000000, 500000), box(layout.Orange, layout.White, 16))
}

func channelDetail(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("チャネル別 — こう使います")
	items := []struct{ name, desc, fit string }{
		{"Notion", "DBに要件を書く → ステータスを\n「実装希望」に変更 → 自動で着手", "プロジェクト管理にNotionを使っている企業"},
		{"Slack", "専用チャンネルでメッセージを送る\n→ 日本語で指示 → スレッドで進捗報告", "社内連絡がSlack中心の企業"},
		{"Google Drive", "Docsに要件ドキュメントを作成\n→ 共有フォルダに入れる → 自動で着手", "Google Workspace中心の企業"},
		{"Chatwork", "専用ルームでメッセージを送る\n→ 日本語で指示 → タスクで進捗報告", "社内連絡がChatwork中心の企業"},
	}
	const boxW, gap, topY layout.EMU = 1900000, 180000, 850000
	for i, x := range sb.Row(len(items), boxW, gap) {
		it := items[i]
		sb.Box(it.name, layout.R(x, topY, boxW, 400000), box(layout.Navy, layout.White, 16))
		sb.Text(it.desc, layout.R(x+80000, topY+500000, boxW-160000, 700000), plain(10, layout.DarkGray, false))
		sb.Text("▶ "+it.fit, layout.R(x+80000, topY+1250000, boxW-160000, 500000), plain(9, layout.Orange, true))
	}
}

func domains(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("AI社員が対応できる 10の業務領域")
	sb.Table([][]string{
		{"領域", "AI社員の名前", "できること"},
		{"営業管理", "SFAエージェント", "商談管理・パイプライン・見積書・受発注管理"},
		{"顧客管理", "CRMエージェント", "顧客情報一元化・問い合わせ管理・顧客分析"},
		{"会計", "会計エージェント", "請求書・仕訳・経費精算・財務レポート"},
		{"法務", "法務エージェント", "契約書管理・稟議フロー・コンプライアンス"},
		{"事務", "事務エージェント", "日報・勤怠・スケジュール・備品管理"},
		{"情シス", "情シスエージェント", "IT資産管理・ヘルプデスク・アカウント管理"},
		{"マーケ", "マーケエージェント", "集客・広告管理・施策効果測定"},
		{"デザイン", "デザインエージェント", "UI/UX設計・ブランディング・制作物管理"},
		{"M&A", "M&Aエージェント", "買収候補調査・企業価値分析・DD支援"},
		{"経営参謀", "No.2エージェント", "KPI分析・経営戦略・偉人ペルソナ助言"},
	}, layout.R(g.M, 800000, g.CW, 3800000))
}

func workflow(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("AI社員の仕事の流れ")
	stepsDef := []struct{ num, title, desc string }{
		{"①", "指示を受ける", "Slack/Notion/\nDrive/Chatwork\nで要件を受信"},
		{"②", "設計する", "業務を理解し\n設計書を作成\n(ジャンル自動判定)"},
		{"③", "確認してもらう", "要件定義書を\nダッシュボードで\n人間が確認・承認"},
		{"④", "実装する", "設計書に基づき\nコードを生成\n(専門ルール適用)"},
		{"⑤", "テストする", "安全な隔離環境で\n自動テスト\n(Lint→単体→E2E)"},
		{"⑥", "納品", "ダッシュボードに\n即反映。\n自動デプロイ"},
	}
	const boxW, boxH, gap, topY layout.EMU = 1250000, 1400000, 150000, 900000
	xs := sb.Row(len(stepsDef), boxW, gap)
	for i, x := range xs {
		s := stepsDef[i]
		sb.Box(s.num+" "+s.title, layout.R(x, topY, boxW, 350000), box(layout.Navy, layout.White, 12))
		sb.Box(s.desc, layout.R(x, topY+400000, boxW, boxH-400000), box(layout.LightGray, layout.DarkGray, 10))
	}
	sb.Connect(xs, boxW, topY+boxH/2, 20000)
	sb.Text("ポイント: ③で必ず人間が確認。「AIが勝手に作った」にはなりません。",
		layout.R(g.M, 4200000, g.CW, 400000), centered(16, layout.Orange, true))
}

func checkpoint(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("御社がコントロールできる仕組み")
	sb.Text("確認モード（推奨）", layout.R(g.M, 750000, 3000000, 350000), plain(18, layout.Navy, true))

	phase1 := []string{"指示", "ジャンル判定", "要件定義書の作成", "【ここで停止】"}
	const p1W, p1Gap, p1Y layout.EMU = 1600000, 100000, 1200000
	xs1 := sb.Row(len(phase1), p1W, p1Gap)
	for i, x := range xs1 {
		opts := box(layout.LightGray, layout.DarkGray, 12)
		if i == len(phase1)-1 {
			opts = box(layout.Orange, layout.White, 12)
		}
		sb.Box(phase1[i], layout.R(x, p1Y, p1W, 400000), opts)
	}
	sb.Connect(xs1, p1W, p1Y+200000, 10000)

	sb.Text("ダッシュボードで確認 →「これでOK？」→ 承認ボタン",
		layout.R(g.M, 1700000, g.CW, 350000), centered(12, layout.DarkGray, false))

	phase2 := []string{"実装", "テスト", "レビュー", "自動デプロイ", "完了通知"}
	const p2W, p2Gap, p2Y layout.EMU = 1300000, 80000, 2200000
	xs2 := sb.Row(len(phase2), p2W, p2Gap)
	for i, x := range xs2 {
		sb.Box(phase2[i], layout.R(x, p2Y, p2W, 400000), box(layout.Navy, layout.White, 12))
	}
	sb.Connect(xs2, p2W, p2Y+200000, 10000)

	sb.Text("全自動モード（慣れてきたら）", layout.R(g.M, 3000000, 3000000, 350000), plain(18, layout.Navy, true))
	sb.Text(lines(
		"・ワンクリックで切り替え可能",
		"・指示を出したら完成まで全自動",
		"・信頼関係が構築されてからの利用を推奨",
	), layout.R(g.M, 3400000, g.CW, 800000), plain(13, layout.DarkGray, false))
}

func security(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("セキュリティ — 「事故ゼロ」を技術で担保")
	walls := []struct{ title, desc string }{
		{"第1壁\n秘密鍵自動検知", "Push前に即ブロック"},
		{"第2壁\nDocker隔離実行", "メモリ制限・\nネットワーク完全遮断"},
		{"第3壁\nコマンド\nホワイトリスト", "rm/chmod等を\n物理的にブロック"},
		{"第4壁\n段階テスト", "Lint→単体→E2E\nの順で品質チェック"},
		{"第5壁\n全操作監査ログ", "誰が・いつ・何を\nしたか全記録"},
	}
	const boxW, gap, topY layout.EMU = 1500000, 140000, 800000
	for i, x := range sb.Row(len(walls), boxW, gap) {
		sb.Box(walls[i].title, layout.R(x, topY, boxW, 700000), box(layout.Navy, layout.White, 11))
		sb.Box(walls[i].desc, layout.R(x, topY+750000, boxW, 500000), box(layout.LightGray, layout.DarkGray, 9))
	}
	sb.Text("→ 監査法人への説明にそのまま使えます。", layout.R(g.M, 3200000, g.CW, 400000), centered(18, layout.Orange, true))
	sb.Table([][]string{
		{"記録項目", "内容"},
		{"操作者", "AI社員（自動記録）"},
		{"日時", "タイムスタンプ付き"},
		{"操作内容", "ファイル作成・コマンド実行・テスト結果の全て"},
		{"承認者", "ダッシュボードで承認した担当者"},
	}, layout.R(g.M+1500000, 3600000, g.CW-3000000, 1200000))
}

func selfImprove(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("使うほど、御社専用のAIに進化します")
	sb.Box("1回目の依頼\n\n汎用的な知識で設計・実装\n修正: 数回必要",
		layout.R(g.M, 1000000, 3200000, 1400000), box(layout.LightGray, layout.DarkGray, 14))
	sb.Text("一般的なAIツールは\nここから進化しない", layout.R(g.M, 2500000, 3200000, 400000), centered(11, layout.DarkGray, false))
	sb.Arrow(3600000, 1700000, 5200000, 1700000)
	sb.Box("10回目の依頼\n\n御社の業務を熟知した\n専門AIとして設計・実装\n修正: ほぼ不要",
		layout.R(5500000, 1000000, 3200000, 1400000), box(layout.Navy, layout.White, 14))
	sb.Text("AI社員（本サービス）\n毎回の実行結果から学習し\nルールを自動で蓄積・改善",
		layout.R(5500000, 2500000, 3200000, 500000), centered(11, layout.Orange, true))
	sb.Text(lines(
		"・成功した実装パターンを自動でルールに追記",
		"・同じ業種・業務の案件は回を追うごとに精度が向上",
		"・SaaSのように「全ユーザー共通」ではなく、御社だけの学習データ",
	), layout.R(g.M, 3300000, g.CW, 800000), plain(13, layout.DarkGray, false))
}

// caseStudy 是三个导入案例页共用的结构：Before、导入经过、After。
type caseStudy struct {
	title      string
	before     string
	beforeH    layout.EMU
	intro      string
	introY     layout.EMU
	story      string
	storyH     layout.EMU
	storyOpts  layout.TextOptions
	afterLabel string
	afterY     layout.EMU
	after      string
}

func (c caseStudy) render(sb *layout.SlideBuilder, g geometry) {
	sb.Header(c.title)
	sb.Box("Before", layout.R(g.M, 800000, 1200000, 350000), box(layout.DarkGray, layout.White, 14))
	sb.Text(c.before, layout.R(g.M+1300000, 800000, g.CW-1400000, c.beforeH), plain(12, layout.DarkGray, false))
	sb.Box(c.intro, layout.R(g.M, c.introY, g.CW, 350000), box(layout.Navy, layout.White, 14))
	sb.Text(c.story, layout.R(g.M+200000, c.introY+450000, g.CW-400000, c.storyH), c.storyOpts)
	sb.Box(c.afterLabel, layout.R(g.M, c.afterY, 1200000, 350000), box(layout.Green, layout.White, 14))
	sb.Text(c.after, layout.R(g.M+1300000, c.afterY, g.CW-1400000, 700000), plain(13, layout.Navy, true))
}

func caseA(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("導入ストーリー① — 製造業 A社（年商30億円）")
	sb.Box("Before", layout.R(g.M, 800000, 1200000, 350000), box(layout.DarkGray, layout.White, 14))
	sb.Text(lines(
		"・社長が営業・経理・顧客管理を全部やっている",
		"・顧客情報は社長の頭の中。Excelが20個以上",
		"・SIerに相談 → 見積もり800万円 → 断念",
	), layout.R(g.M+1300000, 800000, g.CW-1400000, 600000), plain(12, layout.DarkGray, false))

	sb.Box("AI社員導入（Chatworkから指示）", layout.R(g.M, 1600000, g.CW, 350000), box(layout.Navy, layout.White, 14))
	sb.Text(lines(
		"Week 1: 「商談管理を作って」→ SFA画面が自動生成",
		"Week 2: 「請求書管理も」→ 会計機能が追加",
		"Week 3: 「顧客一覧から分析できるように」→ CRMダッシュボード完成",
		"Week 4: 「経営状況をまとめて」→ KPIダッシュボード稼働",
	), layout.R(g.M+200000, 2050000, g.CW-400000, 800000), layout.TextOptions{
		FontSize: 12, Color: layout.DarkGray, Font: layout.FontMono,
	})

	sb.Box("After（3ヶ月後）", layout.R(g.M, 3000000, 1800000, 350000), box(layout.Green, layout.White, 14))
	sb.Text(lines(
		"・社長のスマホに毎朝届く:「受注確度80%以上の案件は3件、合計1,200万円」",
		"・社長の意思決定スピードが3倍に",
		"・初期費用0円、月額20万円 = SIer見積もりの40分の1",
	), layout.R(g.M, 3450000, g.CW, 700000), plain(13, layout.Navy, true))
}

func caseB(sb *layout.SlideBuilder, g geometry, _ any) {
	caseStudy{
		title: "導入ストーリー② — サービス業 B社（年商15億円）",
		before: lines(
			"・情シス担当は1人。外注システムの中身はブラックボックス",
			"・セキュリティ監査で「管理体制が不十分」と指摘",
		),
		beforeH: 500000,
		intro:   "AI社員導入（Slackから指示）",
		introY:  1500000,
		story: lines(
			"Slackの #ai-dev チャンネル で:",
			"「顧客問い合わせの管理画面を作って。個人情報は暗号化で」",
			"",
			"AI社員 → 要件定義書を自動作成 → ダッシュボードで確認",
			"→ 承認後に実装 → テスト全パス → 自動デプロイ",
			"→ 監査ログが全操作を記録",
		),
		storyH:     1000000,
		storyOpts:  plain(12, layout.DarkGray, false),
		afterLabel: "After",
		afterY:     3100000,
		after: lines(
			"・監査法人:「AIが生成したコードのセキュリティは？」",
			"・情シス: 監査ログのダッシュボードを表示するだけ",
			"・「いつ・誰が・何を承認して・どうテストされたか」が全て追跡可能",
		),
	}.render(sb, g)
}

func caseC(sb *layout.SlideBuilder, g geometry, _ any) {
	caseStudy{
		title: "導入ストーリー③ — 不動産 C社（年商50億円）",
		before: lines(
			"・物件情報・契約書・顧客情報がGoogle Driveに散在",
			"・ファイル検索だけで1日30分。属人化で引き継ぎ不可能",
		),
		beforeH: 500000,
		intro:   "AI社員導入（Google Driveから指示）",
		introY:  1500000,
		story: lines(
			"Google Docsに要件を記載:",
			"「物件管理と契約管理を一元化したダッシュボードが欲しい。",
			" 契約金額1,000万円以上は部長承認フローを入れて」",
			"",
			"共有フォルダに入れるだけ → AI社員が自動で読み取り",
			"→ 法務ジャンルの専門ルールを適用",
			"→ 承認フロー付きの契約管理システムを自動生成",
		),
		storyH:     1100000,
		storyOpts:  plain(12, layout.DarkGray, false),
		afterLabel: "After",
		afterY:     3200000,
		after: lines(
			"・物件・契約・顧客を1つのダッシュボードで一元管理",
			"・契約承認フローが自動化。金額に応じた承認ルートを自動設定",
			"・ファイル探しの30分/日 → 0分。年間180時間を創出",
		),
	}.render(sb, g)
}

func comparison(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("他の選択肢との比較")
	sb.Table([][]string{
		{"項目", "AI社員（本サービス）", "SaaS (kintone等)", "SIer受託開発", "AI開発ツール (Copilot等)"},
		{"対象者", "★ 経営者・現場担当者", "現場〜情シス", "情シス〜CTO", "エンジニア"},
		{"IT知識", "★ 不要", "設定スキル必要", "要件定義力必要", "コーディング必須"},
		{"初期費用", "★ 0円", "〜50万円", "500万〜数千万円", "〜5万円/人"},
		{"月額", "★ 20万円〜", "5万〜/ID", "保守費", "2万円/人"},
		{"業務適応", "★ 御社専用に自動適応", "仕様に人が合わせる", "カスタム可能(高額)", "エンジニアが適応"},
		{"成長性", "★ 使うほど賢くなる", "バージョンアップ待ち", "追加発注", "モデル更新待ち"},
		{"セキュリティ", "★ 監査ログ完備", "ベンダー依存", "契約次第", "自己管理"},
		{"業務知識", "★ 10領域の専門知識搭載", "汎用", "要件次第", "なし"},
	}, layout.R(g.M, 800000, g.CW, 3200000))
	sb.Text("→ 「IT知識不要」×「御社専用に進化」×「監査ログ完備」の組み合わせは本サービスだけ",
		layout.R(g.M, 4200000, g.CW, 400000), centered(14, layout.Orange, true))
}

func pricing(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("料金体系")
	sb.Text("シンプルな月額制（AI社員の「給与」）", layout.R(g.M, 700000, g.CW, 350000), plain(16, layout.Navy, true))
	sb.Table([][]string{
		{"プラン", "月額（税別）", "対応ジャンル", "実行回数/月", "サポート"},
		{"スターター", "20万円", "2ジャンルまで", "30回", "メール"},
		{"スタンダード", "40万円", "5ジャンルまで", "100回", "Slack/Chatwork"},
		{"エンタープライズ", "80万円〜", "全10ジャンル", "無制限", "専任担当"},
	}, layout.R(g.M, 1100000, g.CW, 1400000))
	sb.Text(lines(
		"・初期費用: 0円（セットアップ費用なし）",
		"・契約期間: 月単位（年契約で10%割引）",
		"・入力チャネル: 全プランで4種対応（Slack / Notion / Google Drive / Chatwork）",
	), layout.R(g.M, 2600000, g.CW, 600000), plain(12, layout.DarkGray, false))
	sb.Text("人件費との比較", layout.R(g.M, 3300000, g.CW, 300000), plain(16, layout.Navy, true))
	sb.Box("正社員1人の年間コスト: 約500万円\n（給与+社保+教育+退職リスク）",
		layout.R(g.M, 3700000, 3800000, 600000), box(layout.LightGray, layout.DarkGray, 13))
	sb.Box("AI社員の年間コスト: 約240万円〜\n正社員の約半額で 24h365日稼働・退職リスクゼロ",
		layout.R(4600000, 3700000, 4200000, 600000), box(layout.Orange, layout.White, 13))
}

func steps(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("導入はこの3ステップだけ")
	defs := []struct{ num, title, time, items string }{
		{"STEP 1", "初回ヒアリング", "(1時間)", "・御社の業務とお悩みをヒアリング\n・優先する業務領域\n・使用中のツール\n・現在の課題"},
		{"STEP 2", "接続設定", "(最短1日)", "・ご利用中のツールとAI社員を接続\n・Slack連携\n・Notion連携\n・Google Drive連携\n・Chatwork連携"},
		{"STEP 3", "利用開始", "(即日〜)", "・普段のツールでAI社員に指示開始\n・確認モードで安心スタート\n・効果を見ながら領域を拡大"},
	}
	const boxW, gap, topY layout.EMU = 2600000, 200000, 900000
	xs := sb.Row(len(defs), boxW, gap)
	for i, x := range xs {
		d := defs[i]
		sb.Box(lines(d.num, d.title, d.time), layout.R(x, topY, boxW, 600000), box(layout.Navy, layout.White, 14))
		sb.Box(d.items, layout.R(x, topY+700000, boxW, 1400000), box(layout.LightGray, layout.DarkGray, 11))
	}
	sb.Connect(xs, boxW, topY+400000, 20000)
	sb.Text("最短2日で利用開始可能。長期の要件定義や開発期間は不要です。",
		layout.R(g.M, 4200000, g.CW, 400000), centered(18, layout.Orange, true))
}

func partner(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("紹介パートナー制度")
	sb.Text("税理士・銀行・信用金庫の皆さまへ\n顧問先のDX相談、こう解決しませんか？",
		layout.R(g.M, 750000, g.CW, 500000), plain(16, layout.Navy, true))
	sb.Table([][]string{
		{"項目", "内容"},
		{"紹介方法", "顧問先に「AI社員」をご紹介いただくだけ"},
		{"報酬", "初年度売上の最大30%をキックバック"},
		{"紹介例", "10社紹介 × 月額20万 × 30% = 年間720万円"},
		{"御社のメリット", "顧問先の業績改善に貢献 → 解約率低下"},
	}, layout.R(g.M, 1400000, g.CW, 1500000))
	sb.Text("パートナー活用例", layout.R(g.M, 3100000, g.CW, 300000), plain(14, layout.Navy, true))

	flow := []struct {
		label       string
		fill, color layout.ColorRef
	}{
		{"顧問先から\nDX相談を受ける", layout.LightGray, layout.DarkGray},
		{"AI社員サービスを\nご紹介", layout.Navy, layout.White},
		{"紹介報酬 +\n顧問先の満足度向上", layout.Orange, layout.White},
	}
	const flowW, flowGap, flowY, flowH layout.EMU = 2000000, 350000, 3500000, 500000
	xs := sb.Row(len(flow), flowW, flowGap)
	for i, x := range xs {
		sb.Box(flow[i].label, layout.R(x, flowY, flowW, flowH), box(flow[i].fill, flow[i].color, 11))
	}
	sb.Connect(xs, flowW, flowY+flowH/2, 50000)
}

func tech(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("技術基盤（情シス・技術責任者向け）")
	sb.Table([][]string{
		{"レイヤー", "技術", "説明"},
		{"AI基盤", "Gemini Pro / Flash", "設計はPro、実装はFlash"},
		{"オーケストレーション", "LangGraph", "状態管理付きマルチエージェント制御"},
		{"隔離実行", "Docker Sandbox + MCP", "コンテナ内で安全に実行・テスト"},
		{"データベース", "Supabase (PostgreSQL)", "RLS対応。マルチテナント拡張可能"},
		{"インフラ", "Google Cloud (Cloud Run)", "サーバーレス。オートスケール"},
		{"CI/CD", "GitHub Actions", "自動テスト・自動デプロイ"},
		{"監査", "構造化JSON監査ログ", "全操作を記録しSupabaseに永続化"},
	}, layout.R(g.M, 750000, g.CW, 1800000))
	sb.Table([][]string{
		{"対策", "実装"},
		{"コード実行隔離", "Docker: read-only FS, no-network, 512MB, PID 256"},
		{"秘密鍵漏洩防止", "正規表現スキャン（Push前に検知・拒否）"},
		{"危険操作防止", "コマンドホワイトリスト（rm, chmod等をブロック）"},
		{"品質担保", "Lint → Unit → E2E の段階的テスト"},
		{"監査証跡", "全操作のJSON構造化ログ + 承認者記録"},
		{"タスク上限", "1タスク $0.50以下、変更量200行以下"},
	}, layout.R(g.M, 2700000, g.CW, 1800000))
}

func roadmap(sb *layout.SlideBuilder, g geometry, _ any) {
	sb.Header("サービスのロードマップ")
	phases := []struct{ period, title, items, role string }{
		{"2026 Q1-Q2", "【事務エージェント】", "SFA/CRM\n会計/法務\n事務/情シス\nマーケ/デザイン", "\"手足\" として\n業務を片付ける"},
		{"2026 Q3-Q4", "【参謀エージェント】", "KPI分析\n経営提言\n偉人ペルソナ\n助言", "\"右腕\" として\n経営判断を支える"},
		{"2027〜", "【戦略エージェント】", "M&A候補\nDD支援\n競合分析\nバリューアップ", "\"参謀\" として\n成長戦略を立案する"},
	}
	const boxW, gap, topY layout.EMU = 2600000, 200000, 900000
	xs := sb.Row(len(phases), boxW, gap)
	for i, x := range xs {
		p := phases[i]
		sb.Box(p.period, layout.R(x, topY, boxW, 350000), box(layout.Navy, layout.White, 14))
		sb.Text(p.title, layout.R(x, topY+400000, boxW, 300000), centered(14, layout.Navy, true))
		sb.Box(p.items, layout.R(x, topY+750000, boxW, 1000000), box(layout.LightGray, layout.DarkGray, 12))
		sb.Text(p.role, layout.R(x, topY+1850000, boxW, 400000), centered(12, layout.Orange, true))
	}
	sb.Connect(xs, boxW, topY+1200000, 20000)
	sb.Text("今ご導入いただいた企業から、業務データが蓄積され、参謀→戦略と自動進化します。",
		layout.R(g.M, 4200000, g.CW, 400000), centered(14, layout.Orange, true))
}

func cta(sb *layout.SlideBuilder, g geometry, data any) {
	sb.Background(layout.Navy)
	sb.Text("まずは1時間、\nお話しさせてください", layout.R(g.M, 600000, g.CW, 1000000), layout.TextOptions{
		Font: layout.FontTitle, FontSize: 36, Bold: layout.Bool(true), Color: layout.White,
		Align: layout.AlignCenter, VAlign: layout.VAlignMiddle,
	})
	sb.Text("御社にとって最適な「AI社員」の活用プランをご提案します",
		layout.R(g.M, 1700000, g.CW, 400000), centered(16, layout.LightGray, false))

	items := []string{
		"御社の業務で、AI社員が最も効果を発揮する領域はどこか",
		"Slack / Notion / Google Drive / Chatwork のどれから始めるのが最適か",
		"最初の1ヶ月で実現できる具体的な成果イメージ",
		"他の導入企業の具体的な成果データ",
	}
	checked := make([]string, len(items))
	for i, it := range items {
		checked[i] = "  ✓  " + it
	}
	sb.Text("無料ヒアリングでお伝えできること:\n\n"+lines(checked...),
		layout.R(g.M+500000, 2200000, g.CW-1000000, 1200000), plain(13, layout.LightGray, false))

	sb.Box(binding.Interpolate(lines(
		"メール: ${contact.mail|info@example.com}",
		"電話: ${contact.phone|03-XXXX-XXXX}",
		"Web: ${contact.web|https://example.com}",
	), data), layout.R(g.W/2-1800000, 3700000, 3600000, 700000), box(layout.Orange, layout.White, 14))
	sb.Text("「システムを入れるか迷っている」なら、まずAI社員に会ってみてください。",
		layout.R(g.M, 4550000, g.CW, 400000), centered(14, layout.White, true))
}
