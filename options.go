package aigate

// ImageOptions contains configuration for an image generation request.
type ImageOptions struct {
	// Count is the number of images to generate. Zero or negative means
	// one. Imagen supports 1-4.
	Count int
}

// ImageOption is a functional option for configuring image generation.
type ImageOption func(*ImageOptions)

// WithImageCount sets the number of images to generate.
func WithImageCount(n int) ImageOption {
	return func(o *ImageOptions) {
		o.Count = n
	}
}

// ApplyImageOptions applies functional options to an ImageOptions struct.
func ApplyImageOptions(opts ...ImageOption) *ImageOptions {
	o := &ImageOptions{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
