package jwt

import (
	"context"
	"time"

	"WorkTok.com/cmd/model"
	userdb "WorkTok.com/cmd/user/dal/db"
	"WorkTok.com/config"
	"WorkTok.com/pkg/errno"
	"WorkTok.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/jwt"
)

const IdentityKey = "user_id"

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

type LoginParam struct {
	EmployeeId string `json:"employee_id" form:"employee_id" vd:"len($)>0"`
	Password   string `json:"password" form:"password" vd:"len($)>0"`
}

func AccessTokenJwtInit() {
	var err error
	AccessTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "worktok",
		Key:         []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:     time.Duration(config.ConfigInfo.Jwt.AccessExpire) * time.Second,
		MaxRefresh:  time.Hour,
		IdentityKey: IdentityKey,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(*model.User); ok {
				return jwt.MapClaims{
					IdentityKey: v.Id,
					"is_admin":  v.IsAdmin,
				}
			}
			return jwt.MapClaims{}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return claims[IdentityKey]
		},
		Authenticator: func(ctx context.Context, c *app.RequestContext) (interface{}, error) {
			var login LoginParam
			if err := c.BindAndValidate(&login); err != nil {
				return nil, err
			}
			user, err := userdb.QueryUserByEmployeeId(ctx, login.EmployeeId)
			if err != nil || user == nil || user.IsDeleted {
				return nil, errno.AuthorizationErr
			}
			if !utils.VerifyPassword(login.Password, user.PasswordHash) {
				return nil, errno.AuthorizationErr
			}
			c.Set("login_user", user)
			return user, nil
		},
		LoginResponse: func(ctx context.Context, c *app.RequestContext, code int, token string, expire time.Time) {
			refreshToken := ""
			if RefreshTokenJwtMiddleware != nil {
				if user, exists := c.Get("login_user"); exists {
					refreshToken, _, _ = RefreshTokenJwtMiddleware.TokenGenerator(user)
				}
			}
			c.JSON(consts.StatusOK, map[string]interface{}{
				"code":          errno.SuccessCode,
				"message":       "Success",
				"access_token":  token,
				"refresh_token": refreshToken,
				"expire":        expire.Format(time.RFC3339),
			})
		},
		Unauthorized: func(ctx context.Context, c *app.RequestContext, code int, message string) {
			c.JSON(consts.StatusUnauthorized, map[string]interface{}{
				"code":    errno.AuthorizationCode,
				"message": message,
			})
		},
		TokenLookup:   "header: Authorization, query: token",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
	})
	if err != nil {
		panic(err)
	}
}

func RefreshTokenJwtInit() {
	var err error
	RefreshTokenJwtMiddleware, err = jwt.New(&jwt.HertzJWTMiddleware{
		Realm:       "worktok-refresh",
		Key:         []byte(config.ConfigInfo.Jwt.Secret),
		Timeout:     time.Duration(config.ConfigInfo.Jwt.RefreshExpire) * time.Second,
		IdentityKey: IdentityKey,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			if v, ok := data.(*model.User); ok {
				return jwt.MapClaims{IdentityKey: v.Id}
			}
			return jwt.MapClaims{}
		},
		TokenLookup:   "header: Authorization, query: token",
		TokenHeadName: "Bearer",
		TimeFunc:      time.Now,
	})
	if err != nil {
		panic(err)
	}
}

// ConvertJWTPayloadToString 从请求token中取出用户ID
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (string, error) {
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return "", errno.AuthorizationErr
	}
	v, ok := claims[IdentityKey].(string)
	if !ok || v == "" {
		return "", errno.AuthorizationErr
	}
	return v, nil
}

// IsAccessTokenAvailable token存在且未过期
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return false
	}
	return int64(exp) >= time.Now().Unix()
}

// IsAdmin 从token claims判断管理员身份
func IsAdmin(ctx context.Context, c *app.RequestContext) bool {
	claims, err := AccessTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	v, ok := claims["is_admin"].(bool)
	return ok && v
}
