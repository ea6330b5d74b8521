package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	// rutas de las tres tablas precalculadas
	RatingsFile  string
	UserRecsFile string
	SimsFile     string

	// delimitadores por tabla (ratings y user_recs son TSV, sims es CSV)
	RatingsSep  rune
	UserRecsSep rune
	SimsSep     rune

	// reintentos de carga (acotado, sin retry infinito)
	LoadRetries int

	MongoURI  string
	MongoDB   string
	RedisAddr string
	RedisPass string

	JWTSecret     string
	AdminPassword string

	HTTPPort string
}

func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		RatingsFile:  getEnv("RATINGS_FILE", "data/Products_ThoiTrangNam_rating_raw.csv"),
		UserRecsFile: getEnv("USER_RECS_FILE", "data/user_recs.csv"),
		SimsFile:     getEnv("SIMS_FILE", "data/product_sims.csv"),

		RatingsSep:  getSep("RATINGS_SEP", '\t'),
		UserRecsSep: getSep("USER_RECS_SEP", '\t'),
		SimsSep:     getSep("SIMS_SEP", ','),

		LoadRetries: getInt("LOAD_RETRIES", 3),

		MongoURI:  os.Getenv("MONGO_URI"), // vacío = historial deshabilitado
		MongoDB:   getEnv("MONGO_DB", "shopee_recs"),
		RedisAddr: os.Getenv("REDIS_ADDR"), // vacío = cache deshabilitado
		RedisPass: os.Getenv("REDIS_PASSWORD"),

		JWTSecret:     getEnv("JWT_SECRET", "super-secret"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "admin123"),

		HTTPPort: getEnv("HTTP_PORT", "8080"),
	}
}

func getEnv(key, def string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Printf("[config] %s no está seteado, usando valor por defecto\n", key)
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q no es numérico, usando %d\n", key, v, def)
		return def
	}
	return n
}

// getSep acepta "\\t" o "tab" para el tabulador; si no, el primer carácter.
func getSep(key string, def rune) rune {
	v := os.Getenv(key)
	switch v {
	case "":
		return def
	case "\\t", "tab":
		return '\t'
	default:
		return []rune(v)[0]
	}
}
