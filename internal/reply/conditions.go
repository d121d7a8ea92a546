package reply

// UnknownCondition is used when no table has an entry for a code.
const UnknownCondition = "Unknown"

// WMO weather interpretation codes as reported by Open-Meteo.
var conditions = map[string]map[int]string{
	"en": {
		0:  "clear sky",
		1:  "mainly clear",
		2:  "partly cloudy",
		3:  "overcast",
		45: "fog",
		48: "depositing rime fog",
		51: "light drizzle",
		53: "moderate drizzle",
		55: "dense drizzle",
		56: "light freezing drizzle",
		57: "dense freezing drizzle",
		61: "slight rain",
		63: "moderate rain",
		65: "heavy rain",
		66: "light freezing rain",
		67: "heavy freezing rain",
		71: "slight snowfall",
		73: "moderate snowfall",
		75: "heavy snowfall",
		77: "snow grains",
		80: "slight rain showers",
		81: "moderate rain showers",
		82: "violent rain showers",
		85: "slight snow showers",
		86: "heavy snow showers",
		95: "thunderstorm",
		96: "thunderstorm with slight hail",
		99: "thunderstorm with heavy hail",
	},
	"zh": {
		0:  "晴朗",
		1:  "大部晴朗",
		2:  "局部多云",
		3:  "阴天",
		45: "有雾",
		48: "雾凇",
		51: "小毛毛雨",
		53: "中等毛毛雨",
		55: "大毛毛雨",
		56: "轻度冻毛毛雨",
		57: "强冻毛毛雨",
		61: "小雨",
		63: "中雨",
		65: "大雨",
		66: "轻度冻雨",
		67: "强冻雨",
		71: "小雪",
		73: "中雪",
		75: "大雪",
		77: "米雪",
		80: "小阵雨",
		81: "中阵雨",
		82: "强阵雨",
		85: "小阵雪",
		86: "大阵雪",
		95: "雷暴",
		96: "雷暴伴有小冰雹",
		99: "雷暴伴有大冰雹",
	},
	"ja": {
		0:  "快晴",
		1:  "晴れ",
		2:  "一部曇り",
		3:  "曇り",
		45: "霧",
		48: "着氷性の霧",
		51: "弱い霧雨",
		53: "霧雨",
		55: "強い霧雨",
		56: "弱い着氷性の霧雨",
		57: "強い着氷性の霧雨",
		61: "小雨",
		63: "雨",
		65: "大雨",
		66: "弱い着氷性の雨",
		67: "強い着氷性の雨",
		71: "小雪",
		73: "雪",
		75: "大雪",
		77: "霧雪",
		80: "弱いにわか雨",
		81: "にわか雨",
		82: "激しいにわか雨",
		85: "弱いにわか雪",
		86: "強いにわか雪",
		95: "雷雨",
		96: "弱いひょうを伴う雷雨",
		99: "強いひょうを伴う雷雨",
	},
	"ko": {
		0:  "맑음",
		1:  "대체로 맑음",
		2:  "구름 조금",
		3:  "흐림",
		45: "안개",
		48: "착빙성 안개",
		51: "약한 이슬비",
		53: "보통 이슬비",
		55: "강한 이슬비",
		56: "약한 어는 이슬비",
		57: "강한 어는 이슬비",
		61: "약한 비",
		63: "보통 비",
		65: "강한 비",
		66: "약한 어는 비",
		67: "강한 어는 비",
		71: "약한 눈",
		73: "보통 눈",
		75: "강한 눈",
		77: "싸락눈",
		80: "약한 소나기",
		81: "보통 소나기",
		82: "강한 소나기",
		85: "약한 눈 소나기",
		86: "강한 눈 소나기",
		95: "뇌우",
		96: "약한 우박을 동반한 뇌우",
		99: "강한 우박을 동반한 뇌우",
	},
}

// SupportedLanguages lists the languages with a description table and a template.
func SupportedLanguages() []string {
	return []string{"en", "zh", "ja", "ko"}
}
