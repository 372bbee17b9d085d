package redis

// redis key 统一加前缀，按业务分段
const (
	Perfix        = "buqian:"
	KeySession    = "session:"    //用户的远端会话凭证
	KeySignConfig = "signconfig:" //补签流程配置缓存
)

func GetSessionKey(userId string) string {
	return Perfix + KeySession + userId
}

func GetSignConfigKey(userId string) string {
	return Perfix + KeySignConfig + userId
}
