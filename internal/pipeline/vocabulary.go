package pipeline

import "github.com/bestfranklinAI/web-scraper-future-studies/internal/extract"

// chineseStopwords are high-frequency, low-information traditional Chinese
// terms excluded from keyword and topic candidates.
var chineseStopwords = []string{
	"的", "了", "在", "是", "我", "有", "和", "就", "不", "人", "都", "一", "一個", "上", "也",
	"很", "到", "說", "要", "去", "你", "會", "著", "沒有", "看", "好", "自己", "這", "那",
	"可以", "這個", "那個", "但是", "因為", "所以", "如果", "雖然", "然後", "還是", "已經",
	"應該", "可能", "時候", "地方", "問題", "方法", "情況", "時間", "工作", "生活", "學習",
	"知道", "認為", "覺得", "希望", "需要", "想要", "開始", "進行", "發現", "出現", "產生",
	"形成", "建立", "創造", "發展", "提高", "增加", "減少", "改變", "影響", "作用", "關係",
	"聯繫", "比較", "不同", "相同", "重要", "主要", "基本", "一般", "特別", "尤其", "特殊",
	"具體", "詳細", "簡單", "複雜", "容易", "困難", "不可能", "必須", "應當", "能夠", "無法",
	"允許", "禁止", "包括", "除了", "關於", "對於", "根據", "按照", "通過", "利用", "使用",
	"採用", "選擇", "決定", "確定", "安排", "計劃", "準備", "完成", "實現", "達到", "獲得",
	"取得", "成功", "失敗", "正確", "錯誤", "好的", "壞的", "大的", "小的", "多的", "少的",
	"高的", "低的", "長的", "短的", "新的", "舊的",
}

// defaultKeywordPatterns is the pattern channel of keyword extraction:
// acronyms, year mentions, rankings and labeled fact lines.
var defaultKeywordPatterns = []string{
	`[A-Z]{2,}`,
	`\d+年`,
	`第\d+`,
	`(?:學費|費用)\s*[:：]\s*[^\n]+`,
	`(?:入學要求|申請條件)[:：][^\n]+`,
	`(?:截止日期|申請期限)[:：][^\n]+`,
}

// defaultVocabularyPatterns is the domain vocabulary for topic tagging:
// institution types, degree levels, exams, destinations and process terms.
var defaultVocabularyPatterns = []string{
	`大學|學院|學校`,
	`學科|專業|課程`,
	`入學|申請|錄取`,
	`學費|獎學金|資助`,
	`海外|留學|遊學`,
	`英國|美國|加拿大|澳洲|新西蘭`,
	`(?i)IELTS|TOEFL|SAT|A-Level|IB`,
	`碩士|學士|博士`,
	`升學|轉校|銜接`,
	`簽證|移民`,
}

// defaultCountryTable is the ordered address-indicator table for country
// inference; the first matching entry wins.
func defaultCountryTable() extract.CountryTable {
	return extract.CountryTable{
		{Code: "UK", Indicators: []string{"UK", "United Kingdom", "England", "Scotland", "Wales", "Northern Ireland"}},
		{Code: "US", Indicators: []string{"US", "USA", "United States", "America"}},
		{Code: "CA", Indicators: []string{"Canada", "CA"}},
		{Code: "AU", Indicators: []string{"Australia", "AU"}},
		{Code: "CN", Indicators: []string{"China", "CN", "Hong Kong", "Macau"}},
	}
}

// defaultCountryTerms widens entity queries with locale terms per country.
func defaultCountryTerms() []extract.LocaleEntry {
	return []extract.LocaleEntry{
		{Code: "UK", Terms: []string{"united kingdom", "england", "london", "british", "scotland", "wales"}},
		{Code: "US", Terms: []string{"united states", "america", "california", "new york", "boston"}},
		{Code: "AU", Terms: []string{"australia", "sydney", "melbourne", "brisbane"}},
		{Code: "CA", Terms: []string{"canada", "toronto", "vancouver", "montreal"}},
		{Code: "CN", Terms: []string{"china", "hong kong", "macau", "beijing", "shanghai"}},
	}
}

// defaultSynonyms expands common study-abroad terms appearing in entity names.
func defaultSynonyms() []extract.SynonymEntry {
	return []extract.SynonymEntry{
		{Term: "大學", Variants: []string{"學院", "高等教育", "university", "college"}},
		{Term: "申請", Variants: []string{"報名", "入學", "application", "apply"}},
		{Term: "學費", Variants: []string{"費用", "tuition fee", "cost"}},
		{Term: "獎學金", Variants: []string{"資助", "助學金", "scholarship", "grant"}},
		{Term: "留學", Variants: []string{"海外升學", "overseas study", "study abroad"}},
		{Term: "簽證", Variants: []string{"visa", "入境許可"}},
		{Term: "英國", Variants: []string{"UK", "英倫", "Britain", "United Kingdom"}},
		{Term: "美國", Variants: []string{"USA", "美利堅", "America", "United States"}},
	}
}
