package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Cada IP tiene su propio limiter; lastSeen permite descartar IPs inactivas.
type visitante struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// IPRateLimiter mantiene un limiter por IP con un presupuesto de
// maxIntentos por cada ventana.
type IPRateLimiter struct {
	mu         sync.Mutex
	visitantes map[string]*visitante

	maxIntentos int
	ventana     time.Duration
	ttl         time.Duration
}

func NewIPRateLimiter(maxIntentos int, ventana, ttl time.Duration) *IPRateLimiter {
	rl := &IPRateLimiter{
		visitantes:  make(map[string]*visitante),
		maxIntentos: maxIntentos,
		ventana:     ventana,
		ttl:         ttl,
	}
	go rl.limpiarVisitantes()
	return rl
}

func (rl *IPRateLimiter) getLimiter(ip string) *rate.Limiter {
	rl.mu.Lock()
	defer rl.mu.Unlock()

	if v, ok := rl.visitantes[ip]; ok {
		v.lastSeen = time.Now()
		return v.limiter
	}

	limite := rate.Limit(float64(rl.maxIntentos) / rl.ventana.Seconds())
	limiter := rate.NewLimiter(limite, rl.maxIntentos)
	rl.visitantes[ip] = &visitante{limiter: limiter, lastSeen: time.Now()}
	return limiter
}

func (rl *IPRateLimiter) limpiarVisitantes() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()

	for range ticker.C {
		rl.mu.Lock()
		for ip, v := range rl.visitantes {
			if time.Since(v.lastSeen) > rl.ttl {
				delete(rl.visitantes, ip)
			}
		}
		rl.mu.Unlock()
	}
}

// RateLimitByIP corta con 429 cuando la IP agotó su presupuesto.
func RateLimitByIP(rl *IPRateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		limiter := rl.getLimiter(c.ClientIP())
		if !limiter.Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Demasiados intentos, intenta más tarde.",
			})
			return
		}
		c.Next()
	}
}

// RateLimitLogin protege POST /api/auth/login: 10 intentos por IP cada 15
// minutos.
func RateLimitLogin() gin.HandlerFunc {
	return RateLimitByIP(NewIPRateLimiter(10, 15*time.Minute, 30*time.Minute))
}
