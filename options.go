package chaintable

// DefaultBuckets is the bucket count of a table created without WithBuckets.
const DefaultBuckets = 8

type options struct {
	buckets int
	hash    HashFunc
}

// Option configures a Table at creation.
type Option func(*options)

// WithBuckets sets the number of buckets. The count never changes afterwards.
// Values below one are ignored.
func WithBuckets(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.buckets = n
		}
	}
}

// WithHashFunc sets the function used to route keys to buckets.
func WithHashFunc(f HashFunc) Option {
	return func(o *options) {
		if f != nil {
			o.hash = f
		}
	}
}
