package app

import (
	"time"

	"github.com/retodia/retodia-backend/internal/platform/envutil"
)

type Config struct {
	JWTSecretKey    string
	AdminEmail      string
	AccessTokenTTL  time.Duration
	RefreshTokenTTL time.Duration
	WelcomeSeedPath string
	ListenAddr      string
}

func LoadConfig() Config {
	return Config{
		JWTSecretKey:    envutil.Str("JWT_SECRET_KEY", "defaultsecret"),
		AdminEmail:      envutil.Str("ADMIN_EMAIL", "admin@retodia.com"),
		AccessTokenTTL:  envutil.Seconds("ACCESS_TOKEN_TTL", 3600),
		RefreshTokenTTL: envutil.Seconds("REFRESH_TOKEN_TTL", 86400),
		WelcomeSeedPath: envutil.Str("WELCOME_SEED_PATH", "configs/welcome_seed.yaml"),
		ListenAddr:      envutil.Str("LISTEN_ADDR", ":8080"),
	}
}
