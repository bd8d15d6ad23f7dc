package config

// Update applies a slice of Option functions to the Config.
// This is the only way to modify a Config after creation.
// Invalid options are rejected with warnings - config remains in valid state.
func (c *Config) Update(opts []Option) {
	for _, opt := range opts {
		opt(c)
	}
}

// ToOptions converts the Config to a slice of Option functions.
// Only includes persistent fields appropriate for config.yaml.
// Excludes runtime-only fields (HomeDir, Load.*, Report.Top/Bottom).
// Used for round-tripping config.yaml <-> Config conversions.
func (c *Config) ToOptions() []Option {
	var res []Option

	if s := c.API.BaseURL; s != "" {
		res = append(res, OptAPIBaseURL(s))
	}
	if d := c.API.Throttle; d > 0 {
		res = append(res, OptAPIThrottle(d))
	}
	if i := c.API.PageSize; i > 0 {
		res = append(res, OptAPIPageSize(i))
	}
	res = append(res, OptAPIWithCache(c.API.WithCache))

	if s := c.Images.TargetSize; s != "" {
		res = append(res, OptImagesTargetSize(s))
	}
	res = append(res, OptImagesConcurrent(c.Images.Concurrent))

	if i := c.Report.ChunkSize; i > 0 {
		res = append(res, OptReportChunkSize(i))
	}

	if s := c.Log.Format; s != "" {
		res = append(res, OptLogFormat(s))
	}
	if s := c.Log.Level; s != "" {
		res = append(res, OptLogLevel(s))
	}
	if s := c.Log.Destination; s != "" {
		res = append(res, OptLogDestination(s))
	}

	if s := c.IconicTaxon; s != "" {
		res = append(res, OptIconicTaxon(s))
	}
	if s := c.DataDir; s != "" {
		res = append(res, OptDataDir(s))
	}

	return res
}
