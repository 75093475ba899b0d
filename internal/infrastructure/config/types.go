package config

// AppConfig is the root config for app.json
type AppConfig struct {
	Display DisplayConfig `json:"display"`
	Map     string        `json:"map"`
	Loading LoadingConfig `json:"loading"`
	Player  PlayerConfig  `json:"player"`
	NPC     NPCConfig     `json:"npc"`
	UI      UIConfig      `json:"ui"`
}

type DisplayConfig struct {
	Width      int    `json:"width"`
	Height     int    `json:"height"`
	Framerate  int    `json:"framerate"`
	Title      string `json:"title"`
	Fullscreen bool   `json:"fullscreen"`
}

// LoadingConfig tunes the fade-and-load transition into gameplay
type LoadingConfig struct {
	StepDelayMs int `json:"stepDelayMs"` // Pause after each load step (milliseconds)
	FadeStep    int `json:"fadeStep"`    // Alpha change per tick during fades (0-255)
}

type PlayerConfig struct {
	Speed      float64            `json:"speed"`
	Scale      float64            `json:"scale"`
	Animations map[string]string  `json:"animations"` // Animation name -> asset directory
	FrameTimes map[string]float64 `json:"frameTimes"` // Animation name -> seconds per frame
}

type NPCConfig struct {
	Speed         float64           `json:"speed"`
	Scale         float64           `json:"scale"`
	MaxCount      int               `json:"maxCount"`
	SpawnInterval float64           `json:"spawnInterval"`
	FrameTime     float64           `json:"frameTime"`
	Animations    map[string]string `json:"animations"`
}

type UIConfig struct {
	ShowFPS      bool   `json:"showFps"`
	ButtonBorder string `json:"buttonBorder"` // 9-slice border image for buttons
	BorderSize   int    `json:"borderSize"`
}
