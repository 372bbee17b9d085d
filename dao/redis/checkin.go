package redis

import (
	"context"
	"encoding/json"
	"time"

	"buqian/global"
	"buqian/model/hrsign"

	"github.com/go-redis/redis/v8"
	"github.com/pkg/errors"
)

// 流程配置属于远端配置，短期内不变，缓存10分钟
const signConfigTTL = 10 * time.Minute

// SetSession 保存用户的远端会话凭证，有效期和JWT一致
func SetSession(userId string, cred *hrsign.Credential, expire time.Duration) (err error) {
	data, err := json.Marshal(cred)
	if err != nil {
		return errors.Wrap(err, "会话凭证序列化失败")
	}
	err = global.GLOBAL_REDIS.Set(context.Background(), GetSessionKey(userId), data, expire).Err()
	if err != nil {
		return errors.Wrap(err, "会话凭证写入redis失败")
	}
	return nil
}

// GetSession 取回用户的远端会话凭证，过期或不存在时返回ErrorSessionExpired
func GetSession(userId string) (cred *hrsign.Credential, err error) {
	data, err := global.GLOBAL_REDIS.Get(context.Background(), GetSessionKey(userId)).Result()
	if err == redis.Nil {
		return nil, global.ErrorSessionExpired
	}
	if err != nil {
		return nil, errors.Wrap(err, "会话凭证读取redis失败")
	}
	cred = new(hrsign.Credential)
	err = json.Unmarshal([]byte(data), cred)
	if err != nil {
		return nil, errors.Wrap(err, "会话凭证反序列化失败")
	}
	return cred, nil
}

// DelSession 退出登录时删掉凭证
func DelSession(userId string) error {
	return global.GLOBAL_REDIS.Del(context.Background(), GetSessionKey(userId)).Err()
}

func SetSignAgainConfig(userId string, config *hrsign.SignAgainConfig) (err error) {
	data, err := json.Marshal(config)
	if err != nil {
		return err
	}
	return global.GLOBAL_REDIS.Set(context.Background(), GetSignConfigKey(userId), data, signConfigTTL).Err()
}

func GetSignAgainConfig(userId string) (config *hrsign.SignAgainConfig, err error) {
	data, err := global.GLOBAL_REDIS.Get(context.Background(), GetSignConfigKey(userId)).Result()
	if err != nil {
		return nil, err
	}
	config = new(hrsign.SignAgainConfig)
	err = json.Unmarshal([]byte(data), config)
	if err != nil {
		return nil, err
	}
	return config, nil
}
