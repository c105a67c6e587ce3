// internal/services/preset_service.go
// 内置角色/场景模板库：按平台与题材定向，复制时重新发ID。
package services

import (
	"github.com/google/uuid"

	"github.com/shortreel/promptforge/internal/models"
)

// PresetService 提供内置模板的查询与实例化
type PresetService struct{}

// NewPresetService 创建模板服务
func NewPresetService() *PresetService {
	return &PresetService{}
}

var characterPresets = []models.CharacterPreset{
	// Higgsfield 定向（动作/科幻/惊悚）
	{
		ID:          "action-hero",
		Name:        "Action Hero",
		Description: "Elite operative, combat specialist",
		Platforms:   []models.Platform{models.PlatformCine},
		Genres:      []string{"action-thriller", "mystery", "revenge-saga"},
		Character: models.Character{
			Name:                "Marcus Kane",
			Role:                models.RoleHero,
			PhysicalDescription: "35-year-old athletic male with chiseled jawline, intense grey eyes, short military-cut dark hair with grey temples, faint scar across left eyebrow, muscular but lean build like a special forces operator",
			Clothing:            "Black tactical jacket over grey henley, dark cargo pants, combat boots, utility watch, subtle earpiece",
			VoiceStyle:          "Deep, controlled, speaks with measured intensity",
			EmotionalTraits:     []string{"determined", "protective", "strategic", "relentless"},
			Catchphrases:        []string{"No one gets left behind.", "End of the line.", "You picked the wrong fight."},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "sci-fi-hero",
		Name:        "Sci-Fi Protagonist",
		Description: "Futuristic soldier or space operative",
		Platforms:   []models.Platform{models.PlatformCine},
		Genres:      []string{"supernatural", "action-thriller", "mystery"},
		Character: models.Character{
			Name:                "Commander Reyes",
			Role:                models.RoleHero,
			PhysicalDescription: "32-year-old woman with sharp features, cybernetic eye implant glowing blue, athletic build, short asymmetric platinum hair, determined expression, small port behind ear",
			Clothing:            "Sleek black and silver bodysuit with armored plating, holographic wrist interface, magnetic boots, utility belt with energy cells",
			VoiceStyle:          "Confident, authoritative, slight digital distortion",
			EmotionalTraits:     []string{"brave", "analytical", "compassionate", "adaptive"},
			Catchphrases:        []string{"Systems online.", "I've calculated the odds.", "This ends now."},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "corporate-villain",
		Name:        "Corporate Villain",
		Description: "Ruthless tech mogul or crime boss",
		Platforms:   []models.Platform{models.PlatformCine},
		Genres:      []string{"action-thriller", "mystery", "revenge-saga"},
		Character: models.Character{
			Name:                "Victor Sterling",
			Role:                models.RoleVillain,
			PhysicalDescription: "50-year-old distinguished man with silver swept-back hair, cold blue eyes, sharp cheekbones, thin cruel lips, tall imposing frame, always impeccably groomed",
			Clothing:            "Tailored charcoal three-piece suit, platinum cufflinks, expensive watch, silk tie, polished oxford shoes",
			VoiceStyle:          "Smooth, cultured, menacing calm that never raises",
			EmotionalTraits:     []string{"calculating", "ruthless", "controlled", "narcissistic"},
			Catchphrases:        []string{"Everyone has a price.", "How... disappointing.", "You're already too late."},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "femme-fatale",
		Name:        "Femme Fatale",
		Description: "Mysterious double agent",
		Platforms:   []models.Platform{models.PlatformCine},
		Genres:      []string{"action-thriller", "mystery", "revenge-saga"},
		Character: models.Character{
			Name:                "Elena Voss",
			Role:                models.RoleLoveInterest,
			PhysicalDescription: "28-year-old stunning woman with sharp green eyes, high cheekbones, full lips, sleek black hair in a low bun, athletic dancer build, mysterious aura",
			Clothing:            "Form-fitting black dress or tactical catsuit depending on mission, minimal jewelry, hidden weapons",
			VoiceStyle:          "Sultry, intelligent, switches between warmth and ice cold",
			EmotionalTraits:     []string{"mysterious", "intelligent", "seductive", "deadly"},
			Catchphrases:        []string{"Trust is earned.", "Surprise.", "You never saw me coming."},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "hacker-sidekick",
		Name:        "Tech Specialist",
		Description: "Genius hacker and support",
		Platforms:   []models.Platform{models.PlatformCine},
		Genres:      []string{"action-thriller", "supernatural", "mystery"},
		Character: models.Character{
			Name:                "Dev",
			Role:                models.RoleSidekick,
			PhysicalDescription: "24-year-old tech genius with messy dark curly hair, thick-rimmed glasses, friendly face, slight build, always typing on multiple devices, coffee-stained fingers",
			Clothing:            "Graphic tee under unzipped hoodie, cargo shorts or jeans, sneakers, multiple smart watches, noise-canceling headphones around neck",
			VoiceStyle:          "Fast-talking, enthusiastic, prone to technical jargon",
			EmotionalTraits:     []string{"brilliant", "anxious", "loyal", "sarcastic"},
			Catchphrases:        []string{"I'm in.", "Give me sixty seconds.", "That's not supposed to happen..."},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "monster-creature",
		Name:        "Creature/Monster",
		Description: "Horror or sci-fi creature",
		Platforms:   []models.Platform{models.PlatformCine},
		Genres:      []string{"horror", "supernatural"},
		Character: models.Character{
			Name:                "The Entity",
			Role:                models.RoleVillain,
			PhysicalDescription: "Towering humanoid figure with elongated limbs, pitch-black skin that absorbs light, no visible eyes but sensing presence, mouth that opens impossibly wide, moves in unnatural jerky motions",
			Clothing:            "None - appears as shifting darkness, sometimes tendrils of shadow",
			VoiceStyle:          "Multiple overlapping whispers, creates dread",
			EmotionalTraits:     []string{"ancient", "predatory", "unknowable", "patient"},
			Catchphrases:        []string{"[Inhuman screech]", "[Whispered] Found you...", "[Silence]"},
			VisualStyle:         "hyper-realistic",
		},
	},

	// Veo 3.1 定向（对白/情感向）
	{
		ID:          "hulk-hero",
		Name:        "Hulk Hero (Indian Style)",
		Description: "Muscular green hero with traditional Indian elements",
		Platforms:   []models.Platform{models.PlatformVeo},
		Genres:      []string{"action-thriller", "family-drama", "village-drama", "revenge-saga"},
		Character: models.Character{
			Name:                "Hulk",
			Role:                models.RoleHero,
			PhysicalDescription: "Extremely muscular green-skinned giant with bulging veins, massive arms, and intense eyes. Weathered face showing both strength and emotion.",
			Clothing:            "Traditional Indian dhoti or torn purple shorts, gold armlets, sacred thread across chest",
			VoiceStyle:          "Deep, thunderous voice with Hindi accent. Speaks with emotional intensity.",
			EmotionalTraits:     []string{"protective", "emotional", "righteous anger", "loves family"},
			Catchphrases:        []string{"Main tumhe nahi chodunga!", "Yeh meri maa ka apmaan hai!", "Ab bahut ho gaya!"},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "village-mother",
		Name:        "Maa (Village Mother)",
		Description: "Loving Indian village mother figure",
		Platforms:   []models.Platform{models.PlatformVeo},
		Genres:      []string{"family-drama", "village-drama", "romantic-drama", "inspirational"},
		Character: models.Character{
			Name:                "Maa",
			Role:                models.RoleMother,
			PhysicalDescription: "Elderly Indian woman with wrinkled caring face, silver hair in bun, kind eyes filled with wisdom and love",
			Clothing:            "Simple white cotton saree with thin border, mangalsutra, small gold earrings",
			VoiceStyle:          "Soft, loving, trembling with emotion when worried",
			EmotionalTraits:     []string{"loving", "worried", "supportive", "sacrificing"},
			Catchphrases:        []string{"Beta, sambhal ke!", "Mera bacha...", "Bhagwan tumhe rakhe"},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "village-villain",
		Name:        "Randu Baba (Villain)",
		Description: "Menacing village antagonist",
		Platforms:   []models.Platform{models.PlatformVeo},
		Genres:      []string{"village-drama", "revenge-saga", "action-thriller"},
		Character: models.Character{
			Name:                "Randu Baba",
			Role:                models.RoleVillain,
			PhysicalDescription: "Tall, intimidating man with scarred face, crooked nose, menacing smile revealing gold teeth, dark circles under cruel eyes",
			Clothing:            "Black kurta, gold chains, red tilak on forehead, rings on fingers",
			VoiceStyle:          "Gravelly, mocking, sinister laughter",
			EmotionalTraits:     []string{"cruel", "greedy", "power-hungry", "arrogant"},
			Catchphrases:        []string{"Tum mujhse jeetoge?", "Yeh gaon mera hai!", "Dekho kaun aaya hai!"},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "romantic-lead",
		Name:        "Romantic Lead",
		Description: "Charming love interest",
		Platforms:   []models.Platform{models.PlatformVeo},
		Genres:      []string{"romantic-drama", "comedy", "family-drama"},
		Character: models.Character{
			Name:                "Priya",
			Role:                models.RoleLoveInterest,
			PhysicalDescription: "25-year-old beautiful woman with expressive dark eyes, long flowing black hair, radiant smile, graceful movements",
			Clothing:            "Colorful salwar kameez or modern ethnic fusion wear, delicate jewelry, bindis",
			VoiceStyle:          "Melodious, playful, emotionally expressive",
			EmotionalTraits:     []string{"caring", "spirited", "romantic", "independent"},
			Catchphrases:        []string{"Tum samajhte kyun nahi?", "Dil se bolo...", "Pyaar mein sab kuch fair hai"},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "comedy-sidekick",
		Name:        "Comic Relief",
		Description: "Funny best friend character",
		Platforms:   []models.Platform{models.PlatformVeo},
		Genres:      []string{"comedy", "romantic-drama", "action-thriller"},
		Character: models.Character{
			Name:                "Pappu",
			Role:                models.RoleSidekick,
			PhysicalDescription: "Chubby, friendly-faced young man with curly hair, expressive eyebrows, always smiling, animated gestures",
			Clothing:            "Colorful shirt, jeans or dhoti, sneakers, always something slightly mismatched",
			VoiceStyle:          "Loud, animated, prone to funny one-liners",
			EmotionalTraits:     []string{"funny", "loyal", "clumsy", "brave when needed"},
			Catchphrases:        []string{"Bhai bhai bhai!", "Tension mat le yaar!", "Kya scene hai!"},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "horror-villain",
		Name:        "Supernatural Entity",
		Description: "Ghost or demonic presence",
		Platforms:   []models.Platform{models.PlatformVeo},
		Genres:      []string{"horror", "supernatural", "mystery"},
		Character: models.Character{
			Name:                "Chudail",
			Role:                models.RoleVillain,
			PhysicalDescription: "Pale woman with long black hair covering face, unnaturally bent limbs, white saree stained with blood, feet turned backwards, hollow dark eyes",
			Clothing:            "Torn white saree, rusted anklets, no shoes - feet backwards",
			VoiceStyle:          "Whispered, sometimes shrieking, speaks in riddles",
			EmotionalTraits:     []string{"vengeful", "tragic", "terrifying", "ancient"},
			Catchphrases:        []string{"Aa... jao...", "[Haunting laughter]", "Tumne mujhe bhulaya?"},
			VisualStyle:         "hyper-realistic",
		},
	},

	// 双平台通用
	{
		ID:          "detective",
		Name:        "Detective",
		Description: "Sharp investigator",
		Platforms:   []models.Platform{models.PlatformCine, models.PlatformVeo},
		Genres:      []string{"mystery", "action-thriller", "horror"},
		Character: models.Character{
			Name:                "Inspector Ray",
			Role:                models.RoleHero,
			PhysicalDescription: "40-year-old with weathered face showing years of investigation, sharp observant eyes, slightly disheveled appearance, medium build",
			Clothing:            "Worn leather jacket over button-up shirt, dark trousers, comfortable shoes for chasing",
			VoiceStyle:          "Measured, analytical, occasionally sarcastic",
			EmotionalTraits:     []string{"perceptive", "persistent", "troubled", "just"},
			Catchphrases:        []string{"Something doesn't add up.", "The truth always surfaces.", "I've seen this before."},
			VisualStyle:         "hyper-realistic",
		},
	},
	{
		ID:          "mentor-figure",
		Name:        "Wise Mentor",
		Description: "Experienced guide figure",
		Platforms:   []models.Platform{models.PlatformCine, models.PlatformVeo},
		Genres:      []string{"supernatural", "action-thriller", "inspirational", "family-drama"},
		Character: models.Character{
			Name:                "The Elder",
			Role:                models.RoleSupporting,
			PhysicalDescription: "65-year-old with silver beard, wise weathered face, calm piercing eyes that have seen much, tall dignified posture despite age",
			Clothing:            "Simple but quality clothing appropriate to setting, often carries meaningful object",
			VoiceStyle:          "Deep, calming, speaks with weight and wisdom",
			EmotionalTraits:     []string{"wise", "patient", "mysterious", "protective"},
			Catchphrases:        []string{"When the student is ready...", "There is more to learn.", "Trust in yourself."},
			VisualStyle:         "hyper-realistic",
		},
	},
}

var scenePresets = []models.ScenePreset{
	{
		ID:          "emotional-despair",
		Name:        "Emotional Despair",
		Description: "Character in deep emotional pain",
		Category:    "emotional",
		Template: models.Scene{
			Action: "sitting alone, head in hands, shoulders shaking with silent sobs",
			Camera: models.CameraSettings{
				ShotType:       "medium",
				CameraMovement: "static",
				Angle:          "eye-level",
				LensType:       "normal",
				FocusStyle:     "shallow-dof",
			},
			Lighting: models.LightingSettings{
				TimeOfDay:    "dusk",
				LightQuality: "soft",
				LightSource:  "natural",
				Mood:         "moody",
			},
			Audio: models.AudioSettings{
				DialogueEmotion: "sad",
				SFX:             []string{"distant wind", "leaves rustling"},
				AmbientSound:    "quiet evening",
				MusicMood:       "melancholic",
			},
			Setting:  "isolated space with dramatic lighting",
			Duration: 8,
		},
	},
	{
		ID:          "rage-building",
		Name:        "Rage Building",
		Description: "Anger intensifying moment",
		Category:    "action",
		Template: models.Scene{
			Action: "clenching fists, veins bulging, eyes glowing with fury, muscles tensing",
			Camera: models.CameraSettings{
				ShotType:       "close-up",
				CameraMovement: "dolly",
				Angle:          "low-angle",
				LensType:       "normal",
				FocusStyle:     "deep-focus",
			},
			Lighting: models.LightingSettings{
				TimeOfDay:    "noon",
				LightQuality: "hard",
				LightSource:  "natural",
				Mood:         "warm",
			},
			Audio: models.AudioSettings{
				DialogueEmotion: "angry",
				SFX:             []string{"rumbling ground", "crackling energy"},
				AmbientSound:    "tension building",
				MusicMood:       "tense",
			},
			Setting:  "open ground",
			Duration: 8,
		},
	},
	{
		ID:          "heroic-entrance",
		Name:        "Heroic Entrance",
		Description: "Dramatic hero arrival",
		Category:    "action",
		Template: models.Scene{
			Action: "walking forward with powerful strides, dust swirling around feet, determined expression",
			Camera: models.CameraSettings{
				ShotType:       "wide",
				CameraMovement: "tracking",
				Angle:          "low-angle",
				LensType:       "wide-angle",
				FocusStyle:     "deep-focus",
			},
			Lighting: models.LightingSettings{
				TimeOfDay:    "golden-hour",
				LightQuality: "dramatic",
				LightSource:  "backlit",
				Mood:         "warm",
			},
			Audio: models.AudioSettings{
				DialogueEmotion: "determined",
				SFX:             []string{"heavy footsteps", "wind whooshing"},
				AmbientSound:    "crowd murmuring in anticipation",
				MusicMood:       "epic",
			},
			Setting:  "dramatic arena or open space",
			Duration: 8,
		},
	},
	{
		ID:          "confrontation",
		Name:        "Face-to-Face Confrontation",
		Description: "Tense standoff between hero and villain",
		Category:    "confrontation",
		Template: models.Scene{
			Action: "standing face to face, inches apart, both refusing to back down",
			Camera: models.CameraSettings{
				ShotType:       "two-shot",
				CameraMovement: "static",
				Angle:          "eye-level",
				LensType:       "normal",
				FocusStyle:     "deep-focus",
			},
			Lighting: models.LightingSettings{
				TimeOfDay:    "noon",
				LightQuality: "hard",
				LightSource:  "natural",
				Mood:         "neutral",
			},
			Audio: models.AudioSettings{
				DialogueEmotion: "menacing",
				SFX:             []string{"tense silence"},
				AmbientSound:    "holding breath",
				MusicMood:       "tense",
			},
			Setting:  "center of conflict zone",
			Duration: 8,
		},
	},
	{
		ID:          "victory-celebration",
		Name:        "Victory Celebration",
		Description: "Triumphant victory moment",
		Category:    "victory",
		Template: models.Scene{
			Action: "raising fist in triumph, tears of joy streaming down face",
			Camera: models.CameraSettings{
				ShotType:       "wide",
				CameraMovement: "crane",
				Angle:          "low-angle",
				LensType:       "wide-angle",
				FocusStyle:     "deep-focus",
			},
			Lighting: models.LightingSettings{
				TimeOfDay:    "golden-hour",
				LightQuality: "soft",
				LightSource:  "natural",
				Mood:         "warm",
			},
			Audio: models.AudioSettings{
				DialogueEmotion: "joyful",
				SFX:             []string{"crowd roaring", "triumphant drums"},
				AmbientSound:    "celebration",
				MusicMood:       "triumphant",
			},
			Setting:  "arena with celebrating crowd",
			Duration: 8,
		},
	},
	{
		ID:          "emotional-dialogue",
		Name:        "Emotional Dialogue",
		Description: "Heartfelt conversation moment",
		Category:    "dialogue",
		Template: models.Scene{
			Action: "speaking with trembling voice, eyes glistening with unshed tears",
			Camera: models.CameraSettings{
				ShotType:       "close-up",
				CameraMovement: "static",
				Angle:          "eye-level",
				LensType:       "normal",
				FocusStyle:     "shallow-dof",
			},
			Lighting: models.LightingSettings{
				TimeOfDay:    "dusk",
				LightQuality: "soft",
				LightSource:  "natural",
				Mood:         "warm",
			},
			Audio: models.AudioSettings{
				DialogueEmotion: "soft",
				SFX:             []string{},
				AmbientSound:    "quiet evening",
				MusicMood:       "emotional",
			},
			Setting:  "intimate indoor space",
			Duration: 8,
		},
	},
}

var storyThemes = []models.StoryTheme{
	{ID: "family-honor", Name: "Family Honor", Description: "Protecting family dignity"},
	{ID: "village-justice", Name: "Village Justice", Description: "Fighting corruption in village"},
	{ID: "mothers-love", Name: "Mother's Love", Description: "Bond between hero and mother"},
	{ID: "redemption", Name: "Redemption", Description: "Hero overcoming past mistakes"},
	{ID: "underdog-victory", Name: "Underdog Victory", Description: "David vs Goliath story"},
	{ID: "sacrifice", Name: "Sacrifice", Description: "Hero sacrificing for loved ones"},
}

var settingOptions = []string{
	"dusty Indian village square",
	"traditional wrestling arena (akhada)",
	"small mud house with thatched roof",
	"village temple courtyard",
	"banyan tree at village center",
	"village well area",
	"narrow village lanes",
	"open fields with mustard crops",
	"riverside ghat",
	"village market",
}

var sfxOptions = []string{
	"thunder crack", "ground rumbling", "crowd cheering", "crowd gasping",
	"wind howling", "temple bells", "drums beating", "birds flying away",
	"bones cracking", "heavy footsteps", "fabric tearing", "metal clashing",
	"fire crackling", "water splashing", "leaves rustling", "distant storm",
}

// CharacterPresets 返回全部角色模板
func (s *PresetService) CharacterPresets() []models.CharacterPreset {
	return characterPresets
}

// FilteredCharacterPresets 按平台与题材过滤角色模板
func (s *PresetService) FilteredCharacterPresets(platform models.Platform, genre string) []models.CharacterPreset {
	out := make([]models.CharacterPreset, 0, len(characterPresets))
	for _, preset := range characterPresets {
		if !containsPlatform(preset.Platforms, platform) {
			continue
		}
		if genre != "" && !containsString(preset.Genres, genre) {
			continue
		}
		out = append(out, preset)
	}
	return out
}

// InstantiateCharacter 复制模板角色并发放新ID
func (s *PresetService) InstantiateCharacter(presetID string) (*models.Character, bool) {
	for _, preset := range characterPresets {
		if preset.ID == presetID {
			character := preset.Character
			character.ID = "preset-char-" + uuid.NewString()
			// 切片字段需要深拷贝，避免多个实例共享底层数组
			character.EmotionalTraits = append([]string(nil), preset.Character.EmotionalTraits...)
			character.Catchphrases = append([]string(nil), preset.Character.Catchphrases...)
			return &character, true
		}
	}
	return nil, false
}

// ScenePresets 返回全部场景模板
func (s *PresetService) ScenePresets() []models.ScenePreset {
	return scenePresets
}

// InstantiateScene 复制场景模板并发放新ID
func (s *PresetService) InstantiateScene(presetID string) (*models.Scene, bool) {
	for _, preset := range scenePresets {
		if preset.ID == presetID {
			scene := preset.Template
			scene.ID = "preset-scene-" + uuid.NewString()
			scene.CharacterIDs = append([]string(nil), preset.Template.CharacterIDs...)
			scene.Audio.SFX = append([]string(nil), preset.Template.Audio.SFX...)
			scene.NegativePrompts = append([]string(nil), preset.Template.NegativePrompts...)
			return &scene, true
		}
	}
	return nil, false
}

// StoryThemes 返回预设故事主题
func (s *PresetService) StoryThemes() []models.StoryTheme {
	return storyThemes
}

// SettingOptions 返回预设场景地点
func (s *PresetService) SettingOptions() []string {
	return settingOptions
}

// SFXOptions 返回预设音效选项
func (s *PresetService) SFXOptions() []string {
	return sfxOptions
}

func containsPlatform(list []models.Platform, p models.Platform) bool {
	for _, item := range list {
		if item == p {
			return true
		}
	}
	return false
}

func containsString(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
