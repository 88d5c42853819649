package capture

// Snapshot is a serializable record of the scene state at one tick.
type Snapshot struct {
	Tick       uint64  `yaml:"tick"`
	Elapsed    float64 `yaml:"elapsed"`
	CameraMode string  `yaml:"camera_mode"`
	RenderMode string  `yaml:"render_mode"`
	Day        bool    `yaml:"day"`
	PlaneLight bool    `yaml:"plane_lights"`

	Plane  PlaneState  `yaml:"plane"`
	Planet PlanetState `yaml:"planet"`
	Camera CameraState `yaml:"camera"`
	Flag   FlagState   `yaml:"flag"`
	Lights []LampState `yaml:"lights,omitempty"`
}

// PlaneState is the flight state part of a Snapshot.
type PlaneState struct {
	Position [3]float32 `yaml:"position,flow"`
	Forward  [3]float32 `yaml:"forward,flow"`
	Speed    float32    `yaml:"speed"`
}

// PlanetState is the planet part of a Snapshot. Rotation is column-major.
type PlanetState struct {
	Position [3]float32 `yaml:"position,flow"`
	Rotation [9]float32 `yaml:"rotation,flow"`
}

// CameraState is the camera part of a Snapshot.
type CameraState struct {
	Position [3]float32 `yaml:"position,flow"`
	Fov      float32    `yaml:"fov"`
}

// FlagState is the cloth simulator part of a Snapshot.
type FlagState struct {
	Time float64 `yaml:"time"`
}

// LampState is one visible plane lamp.
type LampState struct {
	Name      string     `yaml:"name"`
	Position  [3]float32 `yaml:"position,flow"`
	Intensity float32    `yaml:"intensity"`
}
