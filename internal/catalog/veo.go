// internal/catalog/veo.go
package catalog

// AngleInfo Veo 3.1 机位角度条目
type AngleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emotional   string `json:"emotional"`
}

// VeoMovementInfo Veo 3.1 运镜条目
type VeoMovementInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LensEffectInfo Veo 3.1 镜头效果条目
type LensEffectInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// LightingStyleInfo Veo 3.1 灯光风格条目
type LightingStyleInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Mood        string `json:"mood"`
}

type angleEntry struct {
	key  string
	info AngleInfo
}

var veoAngles = []angleEntry{
	{"eye-level", AngleInfo{"Eye Level", "Camera at subject eye height", "Neutral, relatable"}},
	{"low-angle", AngleInfo{"Low Angle", "Camera below subject looking up", "Power, dominance, heroic"}},
	{"high-angle", AngleInfo{"High Angle", "Camera above subject looking down", "Vulnerability, weakness, overview"}},
	{"dutch-angle", AngleInfo{"Dutch Angle", "Tilted horizon line", "Unease, tension, disorientation"}},
	{"birds-eye", AngleInfo{"Bird's Eye View", "Directly overhead", "Omniscience, insignificance"}},
	{"worms-eye", AngleInfo{"Worm's Eye View", "From ground looking up", "Extreme power, towering"}},
	{"close-up", AngleInfo{"Close-Up", "Tight framing on face", "Intimacy, emotion, detail"}},
	{"extreme-close-up", AngleInfo{"Extreme Close-Up", "Very tight on feature", "Intensity, focus, revelation"}},
	{"medium-shot", AngleInfo{"Medium Shot", "Waist up framing", "Conversational, balanced"}},
	{"full-shot", AngleInfo{"Full Shot", "Full body visible", "Character in environment"}},
	{"wide-shot", AngleInfo{"Wide Shot", "Environment prominent", "Context, scale, isolation"}},
	{"over-shoulder", AngleInfo{"Over the Shoulder", "From behind one character", "Conversation, connection"}},
	{"pov", AngleInfo{"POV", "Character's viewpoint", "Immersion, subjective experience"}},
}

type veoMovementEntry struct {
	key  string
	info VeoMovementInfo
}

var veoMovements = []veoMovementEntry{
	{"static", VeoMovementInfo{"Static", "Locked, no movement"}},
	{"pan-left", VeoMovementInfo{"Pan Left", "Rotate camera left"}},
	{"pan-right", VeoMovementInfo{"Pan Right", "Rotate camera right"}},
	{"tilt-up", VeoMovementInfo{"Tilt Up", "Rotate camera up"}},
	{"tilt-down", VeoMovementInfo{"Tilt Down", "Rotate camera down"}},
	{"dolly-in", VeoMovementInfo{"Dolly In", "Move camera toward subject"}},
	{"dolly-out", VeoMovementInfo{"Dolly Out", "Move camera away from subject"}},
	{"truck-left", VeoMovementInfo{"Truck Left", "Move camera left"}},
	{"truck-right", VeoMovementInfo{"Truck Right", "Move camera right"}},
	{"pedestal-up", VeoMovementInfo{"Pedestal Up", "Move camera up vertically"}},
	{"pedestal-down", VeoMovementInfo{"Pedestal Down", "Move camera down vertically"}},
	{"zoom-in", VeoMovementInfo{"Zoom In", "Optical zoom toward subject"}},
	{"zoom-out", VeoMovementInfo{"Zoom Out", "Optical zoom away"}},
	{"crane-up", VeoMovementInfo{"Crane Up", "Rise on crane"}},
	{"crane-down", VeoMovementInfo{"Crane Down", "Descend on crane"}},
	{"aerial", VeoMovementInfo{"Aerial", "High overhead movement"}},
	{"drone", VeoMovementInfo{"Drone", "Drone-style flight"}},
	{"handheld", VeoMovementInfo{"Handheld", "Natural shake"}},
	{"whip-pan", VeoMovementInfo{"Whip Pan", "Very fast pan"}},
	{"arc-left", VeoMovementInfo{"Arc Left", "Curved movement left"}},
	{"arc-right", VeoMovementInfo{"Arc Right", "Curved movement right"}},
}

type lensEffectEntry struct {
	key  string
	info LensEffectInfo
}

var veoLensEffects = []lensEffectEntry{
	{"wide-angle", LensEffectInfo{"Wide Angle", "Expanded field of view"}},
	{"telephoto", LensEffectInfo{"Telephoto", "Compressed perspective"}},
	{"shallow-dof", LensEffectInfo{"Shallow DOF", "Blurred background"}},
	{"deep-focus", LensEffectInfo{"Deep Focus", "Everything sharp"}},
	{"lens-flare", LensEffectInfo{"Lens Flare", "Light artifacts"}},
	{"rack-focus", LensEffectInfo{"Rack Focus", "Focus shift between subjects"}},
	{"fisheye", LensEffectInfo{"Fisheye", "Ultra-wide distorted"}},
	{"dolly-zoom", LensEffectInfo{"Dolly Zoom", "Vertigo effect"}},
	{"soft-focus", LensEffectInfo{"Soft Focus", "Dreamy softness"}},
	{"macro", LensEffectInfo{"Macro", "Extreme close-up detail"}},
}

type lightingStyleEntry struct {
	key  string
	info LightingStyleInfo
}

var veoLightingStyles = []lightingStyleEntry{
	{"natural-sunlight", LightingStyleInfo{"Natural Sunlight", "Direct sun illumination", "Bright, optimistic, clear"}},
	{"golden-hour", LightingStyleInfo{"Golden Hour", "Warm sunset/sunrise light", "Romantic, nostalgic, warm"}},
	{"blue-hour", LightingStyleInfo{"Blue Hour", "Cool twilight tones", "Melancholic, mysterious, calm"}},
	{"moonlight", LightingStyleInfo{"Moonlight", "Cool night illumination", "Mysterious, romantic, quiet"}},
	{"overcast", LightingStyleInfo{"Overcast", "Soft diffused daylight", "Neutral, natural, even"}},
	{"neon", LightingStyleInfo{"Neon", "Colored artificial lights", "Urban, energetic, vibrant"}},
	{"fluorescent", LightingStyleInfo{"Fluorescent", "Harsh institutional lighting", "Sterile, uncomfortable, clinical"}},
	{"fireplace-glow", LightingStyleInfo{"Fireplace Glow", "Warm flickering orange", "Intimate, cozy, warm"}},
	{"candlelight", LightingStyleInfo{"Candlelight", "Soft flickering warm light", "Romantic, intimate, historical"}},
	{"rembrandt", LightingStyleInfo{"Rembrandt", "Classic portrait lighting", "Dramatic, artistic, classic"}},
	{"film-noir", LightingStyleInfo{"Film Noir", "High contrast shadows", "Mysterious, dramatic, dark"}},
	{"high-key", LightingStyleInfo{"High Key", "Bright, minimal shadows", "Happy, clean, positive"}},
	{"low-key", LightingStyleInfo{"Low Key", "Dark, dramatic shadows", "Dramatic, mysterious, intense"}},
	{"volumetric", LightingStyleInfo{"Volumetric", "Visible light rays", "Atmospheric, ethereal, dramatic"}},
	{"backlit", LightingStyleInfo{"Backlit", "Light from behind subject", "Halo effect, ethereal, separation"}},
	{"silhouette", LightingStyleInfo{"Silhouette", "Subject as dark shape", "Mysterious, iconic, dramatic"}},
	{"rim-light", LightingStyleInfo{"Rim Light", "Edge lighting on subject", "Separation, dramatic, defined"}},
}

var (
	angleIndex         = make(map[string]AngleInfo, len(veoAngles))
	veoMovementIndex   = make(map[string]VeoMovementInfo, len(veoMovements))
	lensEffectIndex    = make(map[string]LensEffectInfo, len(veoLensEffects))
	lightingStyleIndex = make(map[string]LightingStyleInfo, len(veoLightingStyles))
)

func init() {
	for _, e := range veoAngles {
		angleIndex[e.key] = e.info
	}
	for _, e := range veoMovements {
		veoMovementIndex[e.key] = e.info
	}
	for _, e := range veoLensEffects {
		lensEffectIndex[e.key] = e.info
	}
	for _, e := range veoLightingStyles {
		lightingStyleIndex[e.key] = e.info
	}
}

// Angle 按键查机位角度
func Angle(key string) (AngleInfo, bool) {
	info, ok := angleIndex[key]
	return info, ok
}

// VeoMovement 按键查 Veo 运镜
func VeoMovement(key string) (VeoMovementInfo, bool) {
	info, ok := veoMovementIndex[key]
	return info, ok
}

// LensEffect 按键查镜头效果
func LensEffect(key string) (LensEffectInfo, bool) {
	info, ok := lensEffectIndex[key]
	return info, ok
}

// LightingStyle 按键查灯光风格
func LightingStyle(key string) (LightingStyleInfo, bool) {
	info, ok := lightingStyleIndex[key]
	return info, ok
}

// AngleKeys 机位角度键列表（声明顺序）
func AngleKeys() []string {
	keys := make([]string, 0, len(veoAngles))
	for _, e := range veoAngles {
		keys = append(keys, e.key)
	}
	return keys
}

// VeoMovementKeys Veo 运镜键列表
func VeoMovementKeys() []string {
	keys := make([]string, 0, len(veoMovements))
	for _, e := range veoMovements {
		keys = append(keys, e.key)
	}
	return keys
}

// LensEffectKeys 镜头效果键列表
func LensEffectKeys() []string {
	keys := make([]string, 0, len(veoLensEffects))
	for _, e := range veoLensEffects {
		keys = append(keys, e.key)
	}
	return keys
}

// LightingStyleKeys 灯光风格键列表
func LightingStyleKeys() []string {
	keys := make([]string, 0, len(veoLightingStyles))
	for _, e := range veoLightingStyles {
		keys = append(keys, e.key)
	}
	return keys
}
