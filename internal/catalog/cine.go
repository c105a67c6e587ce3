// internal/catalog/cine.go
package catalog

// CameraBodyInfo Higgsfield 摄影机机身条目
type CameraBodyInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BestFor     string `json:"bestFor"`
}

// LensInfo 镜头条目
type LensInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	BestFor     string `json:"bestFor"`
	Character   string `json:"character"`
}

// ApertureInfo 光圈条目
type ApertureInfo struct {
	Description string `json:"description"`
	DOFEffect   string `json:"dofEffect"`
	BestFor     string `json:"bestFor"`
}

// MovementInfo 运镜条目
type MovementInfo struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Emotional   string `json:"emotional"`
}

// FocalLengthInfo 焦段推荐条目
type FocalLengthInfo struct {
	Range       string `json:"range"`
	MM          int    `json:"mm"`
	Description string `json:"description"`
}

type cameraBodyEntry struct {
	key  string
	info CameraBodyInfo
}

var cameraBodies = []cameraBodyEntry{
	{"arri-alexa-35", CameraBodyInfo{"ARRI Alexa 35", "Industry-standard digital cinema camera with organic skin tones", "Drama, dialogue scenes, cinematic look"}},
	{"red-v-raptor", CameraBodyInfo{"RED V-Raptor", "8K sensor, high dynamic range, sharp detail", "Action, high detail, modern look"}},
	{"sony-venice", CameraBodyInfo{"Sony Venice", "Full-frame sensor, excellent low-light, cinematic color science", "Night scenes, moody atmosphere, low-light"}},
	{"imax-film", CameraBodyInfo{"IMAX Film Camera", "Maximum resolution, epic scale footage", "Epic wide shots, landscapes, grand scale"}},
	{"arriflex-16sr", CameraBodyInfo{"Arriflex 16SR", "16mm film aesthetic, vintage documentary look", "Vintage, documentary, nostalgic feel"}},
	{"panavision-dxl2", CameraBodyInfo{"Panavision Millennium DXL2", "Large format, Hollywood blockbuster look", "Blockbuster cinematography, premium look"}},
}

type lensEntry struct {
	key  string
	info LensInfo
}

var lenses = []lensEntry{
	{"arri-signature-prime", LensInfo{"ARRI Signature Prime", "Clean, modern, subtle character", "Modern drama, clean visuals", "Neutral, sharp, minimal distortion"}},
	{"cooke-s4", LensInfo{"Cooke S4", "Warm, organic, famous \"Cooke Look\" bokeh", "Emotional scenes, portraits, skin tones", "Warm, creamy bokeh, organic"}},
	{"zeiss-ultra-prime", LensInfo{"Zeiss Ultra Prime", "Sharp, clinical, high contrast", "Technical precision, modern thrillers", "Sharp, high contrast, clinical"}},
	{"panavision-c-series", LensInfo{"Panavision C-Series", "Classic anamorphic flares", "Epic cinema, horizontal flares, wide aspect", "Anamorphic bokeh, blue flares"}},
	{"canon-k35", LensInfo{"Canon K-35", "Vintage 70s film look, soft roll-off", "Period pieces, vintage aesthetic", "Soft, vintage, warm roll-off"}},
	{"hawk-v-lite", LensInfo{"Hawk V-Lite", "Anamorphic, dramatic flares", "Cinematic widescreen, dramatic shots", "Strong flares, oval bokeh"}},
	{"laowa-macro", LensInfo{"Laowa Macro", "Extreme close-up capability", "Product shots, detail shots, macro", "Extreme sharpness, close focus"}},
	{"petzval", LensInfo{"Petzval", "Swirly bokeh, artistic portrait look", "Artistic portraits, dreamy aesthetic", "Swirly bokeh, center sharp, edge soft"}},
	{"soviet-vintage", LensInfo{"Soviet Vintage (Helios)", "Unique character, nostalgic imperfections", "Indie films, character, imperfection", "Swirly bokeh, flares, character"}},
	{"jdc-xtal-xpress", LensInfo{"JDC Xtal Xpress", "Premium anamorphic, crystal clear", "High-end cinema, clean anamorphic", "Clean anamorphic, minimal distortion"}},
	{"lensbaby", LensInfo{"Lensbaby", "Creative blur, selective focus", "Creative shots, dream sequences", "Selective focus, creative blur"}},
}

type apertureEntry struct {
	key  string
	info ApertureInfo
}

var apertures = []apertureEntry{
	{"f/1.4", ApertureInfo{"Wide open - maximum light", "Extremely shallow DOF, creamy bokeh", "Low light, portraits, isolation"}},
	{"f/2", ApertureInfo{"Very wide - excellent bokeh", "Very shallow DOF, soft background", "Portraits, emotional close-ups"}},
	{"f/2.8", ApertureInfo{"Wide - classic portrait aperture", "Shallow DOF, subject isolation", "Portraits, product, interviews"}},
	{"f/4", ApertureInfo{"Moderate - balanced", "Moderate DOF, some background detail", "Two-shots, medium scenes"}},
	{"f/5.6", ApertureInfo{"Standard - good sharpness", "Moderate-deep DOF", "Group shots, general scenes"}},
	{"f/8", ApertureInfo{"Sharp - landscape standard", "Deep DOF, most in focus", "Landscapes, establishing shots"}},
	{"f/11", ApertureInfo{"Very sharp - maximum detail", "Very deep DOF", "Architecture, wide scenes"}},
	{"f/16", ApertureInfo{"Maximum depth", "Everything in focus", "Epic landscapes, deep scenes"}},
}

type movementEntry struct {
	key  string
	info MovementInfo
}

var cineMovements = []movementEntry{
	// Dolly
	{"dolly-in", MovementInfo{"Dolly In", "Camera moves toward subject", "Increasing intimacy, tension"}},
	{"dolly-out", MovementInfo{"Dolly Out", "Camera moves away from subject", "Revealing context, isolation"}},
	{"dolly-left", MovementInfo{"Dolly Left", "Camera moves left", "Following action, dynamic"}},
	{"dolly-right", MovementInfo{"Dolly Right", "Camera moves right", "Following action, dynamic"}},
	{"super-dolly-in", MovementInfo{"Super Dolly In", "Fast dramatic push toward subject", "High impact, revelation"}},
	{"super-dolly-out", MovementInfo{"Super Dolly Out", "Fast dramatic pull away", "Shocking reveal, scale"}},
	{"double-dolly", MovementInfo{"Double Dolly", "Combined dolly movements", "Complex choreography"}},
	{"dolly-zoom-in", MovementInfo{"Dolly Zoom In (Vertigo)", "Dolly out while zooming in", "Disorientation, realization"}},
	{"dolly-zoom-out", MovementInfo{"Dolly Zoom Out", "Dolly in while zooming out", "Surreal, unsettling"}},
	// Pan & Tilt
	{"pan-left", MovementInfo{"Pan Left", "Camera rotates left", "Following gaze, reveal"}},
	{"pan-right", MovementInfo{"Pan Right", "Camera rotates right", "Following gaze, reveal"}},
	{"tilt-up", MovementInfo{"Tilt Up", "Camera tilts upward", "Awe, power, scale"}},
	{"tilt-down", MovementInfo{"Tilt Down", "Camera tilts downward", "Submission, discovery"}},
	{"whip-pan", MovementInfo{"Whip Pan", "Very fast pan creating motion blur", "Sudden shift, energy"}},
	// Crane & Jib
	{"crane-up", MovementInfo{"Crane Up", "Camera rises vertically", "Liberation, triumph, scale"}},
	{"jib-up", MovementInfo{"Jib Up", "Smooth vertical rise", "Elevation, grandeur"}},
	{"jib-down", MovementInfo{"Jib Down", "Smooth descent", "Grounding, approach"}},
	// Zoom
	{"zoom-in", MovementInfo{"Zoom In", "Optical zoom toward subject", "Focus, emphasis"}},
	{"zoom-out", MovementInfo{"Zoom Out", "Optical zoom away", "Context, reveal"}},
	{"crash-zoom-in", MovementInfo{"Crash Zoom In", "Extremely fast zoom in", "Shock, impact, dramatic"}},
	{"crash-zoom-out", MovementInfo{"Crash Zoom Out", "Extremely fast zoom out", "Sudden reveal, panic"}},
	{"rapid-zoom-in", MovementInfo{"Rapid Zoom In", "Quick zoom toward subject", "Attention, urgency"}},
	{"rapid-zoom-out", MovementInfo{"Rapid Zoom Out", "Quick zoom away", "Quick reveal"}},
	{"eating-zoom", MovementInfo{"Eating Zoom", "Aggressive consuming zoom", "Intensity, consumption"}},
	{"yoyo-zoom", MovementInfo{"YoYo Zoom", "Zoom in and out repeatedly", "Playful, surreal"}},
	// Orbit & Rotation
	{"360-orbit", MovementInfo{"360 Orbit", "Full circle around subject", "Power, centerpiece, hero moment"}},
	{"arc-right", MovementInfo{"Arc Right", "Curved movement to right", "Dynamic reveal, elegance"}},
	{"arc-left", MovementInfo{"Arc Left", "Curved movement to left", "Dynamic reveal, elegance"}},
	{"3d-rotation", MovementInfo{"3D Rotation", "Complex 3D camera rotation", "Disorientation, spectacle"}},
	{"lazy-susan", MovementInfo{"Lazy Susan", "Slow rotation around subject", "Examination, 360 view"}},
	// Specialty
	{"dutch-angle", MovementInfo{"Dutch Angle", "Tilted horizon", "Unease, tension, instability"}},
	{"fisheye", MovementInfo{"Fisheye", "Ultra-wide distorted view", "Surreal, exaggerated"}},
	{"fpv-drone", MovementInfo{"FPV Drone", "First-person drone flight", "Immersive, dynamic, action"}},
	{"handheld", MovementInfo{"Handheld", "Natural shake and movement", "Documentary, urgency, realism"}},
	{"bullet-time", MovementInfo{"Bullet Time", "Frozen moment with rotating camera", "Epic, iconic, frozen action"}},
	{"snorricam", MovementInfo{"Snorricam", "Camera mounted on actor", "Disorientation, subjective"}},
	{"hero-cam", MovementInfo{"Hero Cam", "Low angle empowering shot", "Power, dominance, heroic"}},
	{"car-grip", MovementInfo{"Car Grip", "Car-mounted perspective", "Speed, chase, driving"}},
	{"hyperlapse", MovementInfo{"Hyperlapse", "Moving timelapse", "Time passage, journey"}},
	{"low-shutter", MovementInfo{"Low Shutter", "Motion blur effect", "Dreamy, chaotic, disorienting"}},
	{"flying-cam", MovementInfo{"Flying Cam", "Floating camera movement", "Ethereal, supernatural"}},
	{"focus-change", MovementInfo{"Focus Change", "Rack focus between subjects", "Shift attention, connection"}},
	{"head-tracking", MovementInfo{"Head Tracking", "Following head movement", "Intimate, following gaze"}},
	{"glam", MovementInfo{"Glam", "Beauty/glamour shot movement", "Elegance, beauty, allure"}},
	{"incline", MovementInfo{"Incline", "Angled upward movement", "Rising, aspiration"}},
	{"robo-arm", MovementInfo{"Robo Arm", "Mechanical precision movement", "Technical, precise"}},
	{"road-rush", MovementInfo{"Road Rush", "Fast forward movement", "Speed, urgency, chase"}},
	{"wiggle", MovementInfo{"Wiggle", "Subtle shake/vibration", "Tension, anticipation"}},
	{"static", MovementInfo{"Static", "No movement, locked shot", "Stability, observation, tension"}},
	// POV & Through
	{"object-pov", MovementInfo{"Object POV", "View from object perspective", "Unique perspective, voyeuristic"}},
	{"eyes-in", MovementInfo{"Eyes In", "Camera moves into eyes", "Surreal, psychological, entering mind"}},
	{"mouth-in", MovementInfo{"Mouth In", "Camera moves into mouth", "Surreal, consuming"}},
	{"overhead", MovementInfo{"Overhead", "Bird's eye view straight down", "God view, vulnerability"}},
	{"through-object-in", MovementInfo{"Through Object In", "Moving through obstacle", "Immersive, breaking barrier"}},
	{"through-object-out", MovementInfo{"Through Object Out", "Emerging from object", "Reveal, birth, emergence"}},
	// Timelapse
	{"timelapse-glam", MovementInfo{"Timelapse Glam", "Glamour timelapse", "Transformation, beauty"}},
	{"timelapse-human", MovementInfo{"Timelapse Human", "Human activity timelapse", "Passage of time, routine"}},
	{"timelapse-landscape", MovementInfo{"Timelapse Landscape", "Nature/environment timelapse", "Grand scale, time passage"}},
}

type focalLengthEntry struct {
	key  string
	info FocalLengthInfo
}

var focalLengths = []focalLengthEntry{
	{"epic-landscape", FocalLengthInfo{"12-24mm", 18, "Epic landscapes, dynamic action, establishing shots"}},
	{"environmental-portrait", FocalLengthInfo{"24-35mm", 28, "Environmental portraits, room context"}},
	{"balanced", FocalLengthInfo{"35-50mm", 50, "Natural human perspective, interviews, dialogue"}},
	{"portrait", FocalLengthInfo{"50-85mm", 75, "Portrait compression, intimate moments"}},
	{"close-up", FocalLengthInfo{"85-135mm", 100, "Close-ups, detail shots, dramatic compression"}},
}

var (
	cameraBodyIndex   = make(map[string]CameraBodyInfo, len(cameraBodies))
	lensIndex         = make(map[string]LensInfo, len(lenses))
	apertureIndex     = make(map[string]ApertureInfo, len(apertures))
	cineMovementIndex = make(map[string]MovementInfo, len(cineMovements))
	focalLengthIndex  = make(map[string]FocalLengthInfo, len(focalLengths))
)

func init() {
	for _, e := range cameraBodies {
		cameraBodyIndex[e.key] = e.info
	}
	for _, e := range lenses {
		lensIndex[e.key] = e.info
	}
	for _, e := range apertures {
		apertureIndex[e.key] = e.info
	}
	for _, e := range cineMovements {
		cineMovementIndex[e.key] = e.info
	}
	for _, e := range focalLengths {
		focalLengthIndex[e.key] = e.info
	}
}

// CameraBody 按键查机身，未命中返回 ok=false
func CameraBody(key string) (CameraBodyInfo, bool) {
	info, ok := cameraBodyIndex[key]
	return info, ok
}

// Lens 按键查镜头
func Lens(key string) (LensInfo, bool) {
	info, ok := lensIndex[key]
	return info, ok
}

// Aperture 按键查光圈
func Aperture(key string) (ApertureInfo, bool) {
	info, ok := apertureIndex[key]
	return info, ok
}

// Movement 按键查 Higgsfield 运镜
func Movement(key string) (MovementInfo, bool) {
	info, ok := cineMovementIndex[key]
	return info, ok
}

// FocalLengthFor 按镜头类别查推荐焦段
func FocalLengthFor(category string) (FocalLengthInfo, bool) {
	info, ok := focalLengthIndex[category]
	return info, ok
}

// CameraBodyKeys 机身键列表（声明顺序）
func CameraBodyKeys() []string {
	keys := make([]string, 0, len(cameraBodies))
	for _, e := range cameraBodies {
		keys = append(keys, e.key)
	}
	return keys
}

// LensKeys 镜头键列表
func LensKeys() []string {
	keys := make([]string, 0, len(lenses))
	for _, e := range lenses {
		keys = append(keys, e.key)
	}
	return keys
}

// ApertureKeys 光圈键列表
func ApertureKeys() []string {
	keys := make([]string, 0, len(apertures))
	for _, e := range apertures {
		keys = append(keys, e.key)
	}
	return keys
}

// MovementKeys Higgsfield 运镜键列表
func MovementKeys() []string {
	keys := make([]string, 0, len(cineMovements))
	for _, e := range cineMovements {
		keys = append(keys, e.key)
	}
	return keys
}

// FocalLengthKeys 焦段类别键列表
func FocalLengthKeys() []string {
	keys := make([]string, 0, len(focalLengths))
	for _, e := range focalLengths {
		keys = append(keys, e.key)
	}
	return keys
}
