package consts

const (
	TokenBlacklistKey = "auth:blacklist:"
	MediaTempKey      = "media:temp"
	LikeCountKey      = "like:count:"
	StrainInfoKey     = "strain:info:"
	UserSimpleInfoKey = "user:simple:info:"
)

const (
	StrainSyncLock   = "lock:strain:sync"
	MediaCleanupLock = "lock:media:cleanup"
)
