// pkg/descriptor/types.go
package descriptor

// Spec declares a development shell environment. Tools and Libraries are
// fixed once a Spec has been loaded; evaluation never mutates them.
type Spec struct {
	Name      string            `yaml:"name"`
	Tools     []string          `yaml:"tools"`
	Libraries []string          `yaml:"libraries"`
	Env       map[string]string `yaml:"env"`
	UnsetEnv  []string          `yaml:"unset_env"`
	Init      []string          `yaml:"init"`
}

// Overlay adjusts a base descriptor without replacing it. Tools, Libraries
// and Env entries are additive; UnsetEnv removes variables from the session
// even when the base never set them; Init lines are appended.
type Overlay struct {
	Tools     []string          `yaml:"tools"`
	Libraries []string          `yaml:"libraries"`
	Env       map[string]string `yaml:"env"`
	UnsetEnv  []string          `yaml:"unset_env"`
	Init      []string          `yaml:"init"`
}

// Clone returns a deep copy of the descriptor
func (s *Spec) Clone() *Spec {
	out := &Spec{
		Name:      s.Name,
		Tools:     append([]string(nil), s.Tools...),
		Libraries: append([]string(nil), s.Libraries...),
		UnsetEnv:  append([]string(nil), s.UnsetEnv...),
		Init:      append([]string(nil), s.Init...),
	}
	if s.Env != nil {
		out.Env = make(map[string]string, len(s.Env))
		for k, v := range s.Env {
			out.Env[k] = v
		}
	}
	return out
}
