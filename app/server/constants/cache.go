package constants

import "time"

const (
	CacheKeySliderList    = "cms:sliders:list"
	CacheKeyBlogPublished = "cms:blogs:published"
	CacheKeyBlogSlug      = "cms:blogs:slug:%s"
)

const (
	CacheExpireSliderList    = 1 * time.Hour
	CacheExpireBlogPublished = 10 * time.Minute
	CacheExpireBlogSlug      = 1 * time.Hour
)
