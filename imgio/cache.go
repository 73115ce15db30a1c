package imgio

import (
	"image"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/sgostarter/i/l"
)

// NewCachedReader wraps a Reader with a TTL cache keyed by file name.
// Callers must treat returned images as read-only.
func NewCachedReader(reader Reader, ttl time.Duration, logger l.Wrapper) Reader {
	if logger == nil {
		logger = l.NewNopLoggerWrapper()
	}

	if reader == nil {
		reader = NewReader()
	}

	if ttl <= 0 {
		ttl = time.Minute * 5
	}

	return &cachedReaderImpl{
		logger: logger.WithFields(l.StringField(l.ClsKey, "cachedReaderImpl")),
		reader: reader,
		cache:  cache.New(ttl, ttl),
	}
}

type cachedReaderImpl struct {
	logger l.Wrapper
	reader Reader
	cache  *cache.Cache
}

func (impl *cachedReaderImpl) ReadColor(name string) (*image.RGBA, error) {
	key := "rgba:" + name

	if i, ok := impl.cache.Get(key); ok {
		if img, ok := i.(*image.RGBA); ok {
			return img, nil
		}
	}

	img, err := impl.reader.ReadColor(name)
	if err != nil {
		return nil, err
	}

	impl.cache.Set(key, img, cache.DefaultExpiration)

	return img, nil
}

func (impl *cachedReaderImpl) ReadGrayscale(name string) (*image.Gray, error) {
	key := "gray:" + name

	if i, ok := impl.cache.Get(key); ok {
		if img, ok := i.(*image.Gray); ok {
			return img, nil
		}
	}

	img, err := impl.reader.ReadGrayscale(name)
	if err != nil {
		return nil, err
	}

	impl.cache.Set(key, img, cache.DefaultExpiration)

	return img, nil
}
