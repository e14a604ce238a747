package realip

import (
	"fmt"
	"net"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// LocalsKey is the fiber.Ctx locals key holding the client address.
const LocalsKey = "client_ip"

// Resolver finds the client address behind a chain of trusted proxies.
type Resolver struct {
	trusted []*net.IPNet
}

// NewResolver parses the trusted proxies, given as CIDR ranges or single addresses.
func NewResolver(trusted []string) (*Resolver, error) {
	r := &Resolver{}
	for _, entry := range trusted {
		if strings.Contains(entry, "/") {
			_, n, err := net.ParseCIDR(entry)
			if err != nil {
				return nil, fmt.Errorf("invalid trusted proxy %q: %w", entry, err)
			}
			r.trusted = append(r.trusted, n)
			continue
		}

		ip := net.ParseIP(entry)
		if ip == nil {
			return nil, fmt.Errorf("invalid trusted proxy %q", entry)
		}
		bits := 128
		if ip4 := ip.To4(); ip4 != nil {
			ip, bits = ip4, 32
		}
		r.trusted = append(r.trusted, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
	}
	return r, nil
}

// Trusted reports whether addr belongs to a trusted proxy.
func (r *Resolver) Trusted(addr string) bool {
	ip := net.ParseIP(addr)
	if ip == nil {
		return false
	}
	for _, n := range r.trusted {
		if n.Contains(ip) {
			return true
		}
	}
	return false
}

// ClientIP walks from the peer back through X-Forwarded-For and returns the
// first address that is not a trusted proxy. When every hop is trusted the
// left-most forwarded address is the client.
func (r *Resolver) ClientIP(peer, forwardedFor string) string {
	if forwardedFor == "" || !r.Trusted(peer) {
		return peer
	}

	hops := strings.Split(forwardedFor, ",")
	client := peer
	for i := len(hops) - 1; i >= 0; i-- {
		hop := strings.TrimSpace(hops[i])
		if net.ParseIP(hop) == nil {
			// A malformed hop cannot be trusted to have forwarded anything.
			return client
		}
		client = hop
		if !r.Trusted(hop) {
			return hop
		}
	}
	return client
}

// New returns a middleware storing the resolved client address for Get.
func New(r *Resolver) fiber.Handler {
	return func(c *fiber.Ctx) error {
		peer := c.Context().RemoteIP().String()
		c.Locals(LocalsKey, r.ClientIP(peer, c.Get(fiber.HeaderXForwardedFor)))
		return c.Next()
	}
}

// Get returns the client address of the request, falling back to c.IP()
// outside the middleware.
func Get(c *fiber.Ctx) string {
	if ip, ok := c.Locals(LocalsKey).(string); ok && ip != "" {
		return ip
	}
	return c.IP()
}
