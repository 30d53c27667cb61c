// pkg/descriptor/merge.go
package descriptor

// Merge applies an overlay to a base descriptor and returns a new Spec.
// The base is never modified. Names already declared by the base are kept
// once; overlay env values win over base values.
func Merge(base *Spec, overlay *Overlay) *Spec {
	out := base.Clone()

	out.Tools = appendMissing(out.Tools, overlay.Tools)
	out.Libraries = appendMissing(out.Libraries, overlay.Libraries)
	out.UnsetEnv = appendMissing(out.UnsetEnv, overlay.UnsetEnv)
	out.Init = append(out.Init, overlay.Init...)

	if len(overlay.Env) > 0 {
		if out.Env == nil {
			out.Env = make(map[string]string, len(overlay.Env))
		}
		for k, v := range overlay.Env {
			out.Env[k] = v
		}
	}

	return out
}

func appendMissing(base, extra []string) []string {
	seen := make(map[string]bool, len(base))
	for _, name := range base {
		seen[name] = true
	}

	for _, name := range extra {
		if !seen[name] {
			base = append(base, name)
			seen[name] = true
		}
	}

	return base
}
