package identity

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"divineastro/config"
	"divineastro/utils"

	"github.com/go-redis/redis/v8"
	"github.com/golang-jwt/jwt"
	"go.uber.org/zap"
)

// SupabaseVerifier validates bearer tokens against Supabase Auth (GoTrue).
// When a JWT secret is configured, tokens are verified locally; otherwise the
// auth REST endpoint is consulted. Successful verifications are cached
// briefly in Redis keyed by token hash; cache unavailability degrades to
// direct verification.
type SupabaseVerifier struct {
	URL            string
	AnonKey        string
	JWTSecret      string
	AllowList      []string
	DomainSuffixes []string

	cache      *redis.Client
	httpClient *http.Client
}

// NewSupabaseVerifier builds a verifier from the loaded configuration.
// cache may be nil to disable verification caching.
func NewSupabaseVerifier(cache *redis.Client) *SupabaseVerifier {
	return &SupabaseVerifier{
		URL:            strings.TrimRight(config.AppConfig.SupabaseURL, "/"),
		AnonKey:        config.AppConfig.SupabaseAnonKey,
		JWTSecret:      config.AppConfig.SupabaseJWTSecret,
		AllowList:      config.AdminAllowList(),
		DomainSuffixes: config.AdminDomainList(),
		cache:          cache,
		httpClient:     &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *SupabaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	if token == "" {
		return nil, ErrUnauthenticated
	}

	cacheKey := utils.AuthCachePrefix + hashToken(token)
	if v.cache != nil {
		if cached, err := v.cache.Get(ctx, cacheKey).Result(); err == nil {
			var ident Identity
			if json.Unmarshal([]byte(cached), &ident) == nil {
				return &ident, nil
			}
		} else if err != redis.Nil {
			utils.GetLogger().Warn("auth cache unavailable, verifying directly", zap.Error(err))
		}
	}

	ident, err := v.verify(ctx, token)
	if err != nil {
		return nil, err
	}

	if v.cache != nil {
		if data, err := json.Marshal(ident); err == nil {
			_ = v.cache.Set(ctx, cacheKey, data, utils.AuthCacheTTL).Err()
		}
	}
	return ident, nil
}

func (v *SupabaseVerifier) verify(ctx context.Context, token string) (*Identity, error) {
	if v.JWTSecret != "" {
		if ident, err := v.verifyLocal(token); err == nil {
			return ident, nil
		}
	}
	return v.verifyRemote(ctx, token)
}

// verifyLocal checks the HS256 signature with the Supabase JWT secret,
// avoiding a network round trip per request.
func (v *SupabaseVerifier) verifyLocal(token string) (*Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(v.JWTSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrUnauthenticated
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || email == "" {
		return nil, ErrUnauthenticated
	}
	return v.identityFor(sub, email), nil
}

// verifyRemote asks the GoTrue user endpoint to validate the token.
func (v *SupabaseVerifier) verifyRemote(ctx context.Context, token string) (*Identity, error) {
	if v.URL == "" {
		return nil, ErrUnauthenticated
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, v.URL+"/auth/v1/user", nil)
	if err != nil {
		return nil, ErrUnauthenticated
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("apikey", v.AnonKey)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		utils.GetLogger().Warn("identity provider unreachable", zap.Error(err))
		return nil, ErrUnauthenticated
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 4<<10))
		return nil, ErrUnauthenticated
	}

	var user struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&user); err != nil || user.ID == "" || user.Email == "" {
		return nil, ErrUnauthenticated
	}
	return v.identityFor(user.ID, user.Email), nil
}

func (v *SupabaseVerifier) identityFor(id, email string) *Identity {
	return &Identity{
		ID:    id,
		Email: email,
		Admin: IsAdmin(email, v.AllowList, v.DomainSuffixes),
	}
}

// hashToken computes a SHA-256 hash of the token string for cache keys.
func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
