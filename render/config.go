package render

// config.go reduces Render's parameter footprint using functional
// options. See: http://dave.cheney.net/2014/10/17/functional-options-for-friendly-apis

// Config holds the attributes that can be set before a render runs.
type Config struct {
	SamplesPerPixel int
	MaxDepth        int
	TileWidth       int
	TileHeight      int
	Workers         int // 0 means use runtime.GOMAXPROCS(0)

	// UsePredictor turns on the HRPP acceleration structure. GoUpLevel
	// configures how far above the hit leaf a prediction is recorded.
	UsePredictor bool
	GoUpLevel    int

	Gamma bool
}

// configDefaults provides reasonable defaults so a render runs even if
// no configuration attributes are set.
var configDefaults = Config{
	SamplesPerPixel: 100,
	MaxDepth:        50,
	TileWidth:       32,
	TileHeight:      32,
	Workers:         0,
	UsePredictor:    false,
	GoUpLevel:       0,
	Gamma:           true,
}

// Attr is an optional Config attribute applied by NewConfig.
type Attr func(*Config)

// NewConfig builds a Config from configDefaults plus the given
// attributes, applied in order.
func NewConfig(attrs ...Attr) Config {
	c := configDefaults
	for _, attr := range attrs {
		attr(&c)
	}
	return c
}

func Samples(n int) Attr       { return func(c *Config) { c.SamplesPerPixel = n } }
func MaxDepth(n int) Attr      { return func(c *Config) { c.MaxDepth = n } }
func TileSize(w, h int) Attr   { return func(c *Config) { c.TileWidth, c.TileHeight = w, h } }
func Workers(n int) Attr       { return func(c *Config) { c.Workers = n } }
func Predictor(goUpLevel int) Attr {
	return func(c *Config) { c.UsePredictor = true; c.GoUpLevel = goUpLevel }
}
func Gamma(on bool) Attr { return func(c *Config) { c.Gamma = on } }
