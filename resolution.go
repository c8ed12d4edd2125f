package vivid

// Resolution is a fixed output size preset. The preset name doubles as the
// registry key ("WxH").
type Resolution struct {
	Name   string `json:"name"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
}

// resolutions is the immutable preset registry.
var resolutions = []Resolution{
	{Name: "1024x1024", Width: 1024, Height: 1024},
	{Name: "1280x720", Width: 1280, Height: 720},
	{Name: "720x1280", Width: 720, Height: 1280},
}

var resolutionByName = func() map[string]Resolution {
	m := make(map[string]Resolution, len(resolutions))
	for _, r := range resolutions {
		m[r.Name] = r
	}
	return m
}()

// ResolutionFromName looks up a resolution preset by its "WxH" key.
func ResolutionFromName(name string) (Resolution, bool) {
	r, ok := resolutionByName[name]
	return r, ok
}

// Resolutions returns the declared presets in registry order.
func Resolutions() []Resolution {
	out := make([]Resolution, len(resolutions))
	copy(out, resolutions)
	return out
}
