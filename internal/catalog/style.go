// internal/catalog/style.go
package catalog

// 题材描述：供 LLM 提示词引用，帮助模型把握类型片基调
var genreDescriptions = map[string]string{
	"romantic-drama":  "Emotional love story with dramatic twists, heart-wrenching moments, and passionate dialogues",
	"action-thriller": "High-octane action sequences, suspense, chase scenes, and intense confrontations",
	"comedy":          "Humorous situations, witty dialogues, slapstick moments, and light-hearted fun",
	"horror":          "Scary atmosphere, supernatural elements, tension-building, and terrifying revelations",
	"family-drama":    "Emotional family bonds, generational conflicts, sacrifice, and reconciliation",
	"revenge-saga":    "Justice-seeking protagonist, wronged hero, powerful villains, and ultimate retribution",
	"mystery":         "Suspenseful investigation, hidden secrets, plot twists, and surprising revelations",
	"inspirational":   "Underdog story, overcoming obstacles, motivational journey, and triumphant victory",
	"village-drama":   "Rural Indian setting, traditional values, community dynamics, and cultural richness",
	"supernatural":    "Magical elements, otherworldly powers, mystical beings, and fantastical events",
}

// 风格预设描述：供 LLM 系统提示词引用
var styleDescriptions = map[string]string{
	"bollywood-drama":       "Bollywood cinematic style with vibrant saturated colors, dramatic expressions, emotional music swells, filmy dialogues with dramatic pauses, high contrast lighting, glamorous cinematography",
	"hollywood-action":      "Hollywood blockbuster style with slick cinematography, fast cuts, explosive visuals, intense close-ups, high production value, cinematic color grading",
	"indian-village":        "Authentic Indian rural aesthetic with earthy brown and green tones, natural golden sunlight, rustic mud houses, traditional clothing, dusty village paths, wheat fields, authentic village atmosphere",
	"film-noir":             "Classic film noir style with high contrast black and white, dramatic shadows, moody low-key lighting, mysterious atmosphere, dramatic silhouettes, venetian blind shadows",
	"colorful-vibrant":      "Hyper-saturated vibrant colors, bright pop lighting, energetic visuals, lively festive atmosphere, high color contrast",
	"dark-moody":            "Desaturated muted colors, low-key dramatic lighting, somber atmosphere, emotional depth, shadow-heavy cinematography",
	"realistic-documentary": "Photorealistic documentary style with natural available lighting, handheld camera feel, authentic locations, grounded realistic visuals",
	"anime-style":           "Stylized anime-inspired visuals with expressive exaggerated emotions, dynamic dramatic angles, vibrant bold aesthetics, speed lines, dramatic lighting effects",
}

// 风格修饰词：拼进 Veo 场景提示词 STYLE 段
var veoStyleModifiers = map[string]string{
	"bollywood-drama":       "Bollywood cinematic style, vibrant saturated colors, dramatic glamorous cinematography, high production value, filmy aesthetic",
	"hollywood-action":      "Hollywood blockbuster cinematography, slick professional lighting, high budget production value, cinematic color grading",
	"indian-village":        "Authentic Indian rural village aesthetic, earthy warm brown and green tones, natural golden sunlight, rustic traditional atmosphere, dusty village paths",
	"film-noir":             "Classic film noir style, high contrast shadows, black and white or desaturated, moody mysterious atmosphere",
	"colorful-vibrant":      "Hyper-vibrant saturated colors, bright energetic lighting, festive lively atmosphere",
	"dark-moody":            "Dark moody atmospheric, desaturated muted colors, dramatic shadow-heavy lighting, emotional depth",
	"realistic-documentary": "Photorealistic documentary style, natural available lighting, authentic grounded visuals",
	"anime-style":           "Anime-inspired visual style, stylized expressive aesthetics, vibrant dynamic colors, dramatic anime lighting",
}

// 风格修饰词：拼进角色参考图提示词 STYLE 段（措辞偏肖像摄影）
var referenceStyleModifiers = map[string]string{
	"bollywood-drama":       "cinematic Bollywood portrait style, dramatic studio lighting, glamorous high-fashion look, rich saturated colors, professional photography",
	"hollywood-action":      "Hollywood movie poster style, dramatic cinematic lighting, high contrast, professional studio photography, blockbuster film aesthetic",
	"indian-village":        "authentic Indian rural setting, natural golden hour sunlight, earthy warm tones, village background with mud houses, traditional authentic look",
	"film-noir":             "classic film noir black and white, high contrast dramatic shadows, mysterious moody lighting, venetian blind shadow patterns",
	"colorful-vibrant":      "vibrant pop art colors, bright energetic lighting, saturated colorful background, festive atmosphere",
	"dark-moody":            "moody atmospheric portrait, desaturated colors, dramatic shadows, emotional depth, low-key lighting",
	"realistic-documentary": "photorealistic natural portrait, available ambient lighting, authentic real-world setting, documentary photography style",
	"anime-style":           "anime character portrait style, stylized expressive features, vibrant anime colors, dynamic pose, manga-inspired aesthetic",
}

// GenreDescription 题材描述，未收录的题材退化为原词
func GenreDescription(genre string) string {
	if desc, ok := genreDescriptions[genre]; ok {
		return desc
	}
	return genre
}

// StyleDescription 风格预设描述，未收录的风格退化为原词
func StyleDescription(preset string) string {
	if desc, ok := styleDescriptions[preset]; ok {
		return desc
	}
	return preset
}

// VeoStyleModifier 场景提示词用的风格修饰词
func VeoStyleModifier(preset string) string {
	if mod, ok := veoStyleModifiers[preset]; ok {
		return mod
	}
	return "cinematic visual style"
}

// ReferenceStyleModifier 参考图提示词用的风格修饰词
func ReferenceStyleModifier(preset string) string {
	if mod, ok := referenceStyleModifiers[preset]; ok {
		return mod
	}
	return "professional studio portrait style"
}

// GenreKeys 题材键列表
func GenreKeys() []string {
	return []string{
		"romantic-drama", "action-thriller", "comedy", "horror", "family-drama",
		"revenge-saga", "mystery", "inspirational", "village-drama", "supernatural",
	}
}

// StylePresetKeys 风格预设键列表
func StylePresetKeys() []string {
	return []string{
		"bollywood-drama", "hollywood-action", "indian-village", "film-noir",
		"colorful-vibrant", "dark-moody", "realistic-documentary", "anime-style",
	}
}
