package jwt

import (
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
)

type JWT struct {
	key []byte
}

// Session 是签进令牌里的声明：会话 ID 指向 redis 里的服务端记录
type Session struct {
	SID     string
	Expires int64 // Unix second
}

func New(key string) (*JWT, error) {
	if len(key) == 0 {
		return nil, errors.New("key is empty")
	}

	return &JWT{key: []byte(key)}, nil
}

func (j *JWT) ParseSession(tokenString string) (*Session, error) {
	// 检查是否有效
	if len(tokenString) == 0 {
		return nil, errors.New("token string is empty")
	}

	// 映射字段
	session := &Session{}
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		return j.key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse jwt failed: %w", err)
	}

	// 匹配内容
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		sid, sidOk := claims["sid"].(string)
		exp, expOk := claims["exp"].(float64)
		if !sidOk || !expOk {
			return nil, fmt.Errorf("invalid token")
		}
		session.SID = sid
		session.Expires = int64(exp)
	} else {
		return nil, fmt.Errorf("invalid token")
	}

	return session, nil
}

func (j *JWT) SignToken(session *Session) (string, error) {
	// 创建声明
	claims := jwt.MapClaims{
		"sid": session.SID,
		"exp": session.Expires,
	}

	// 创建令牌
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	// 签名并返回
	return token.SignedString(j.key)
}
