package testioc

import (
	"sync"

	"github.com/ecodeclub/ecache"
	"github.com/ecodeclub/tastebook/ioc"
)

var (
	cache         ecache.Cache
	cacheInitOnce sync.Once
)

// InitCache 和线上使用同样的前缀
func InitCache() ecache.Cache {
	cacheInitOnce.Do(func() {
		if err := loadConfig(); err != nil {
			panic(err)
		}
		cache = ioc.InitCache(ioc.InitRedis())
	})
	return cache
}
