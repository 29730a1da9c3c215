package geoip

import (
	"errors"
	"fmt"
	"net"
	"strings"

	"github.com/oschwald/geoip2-golang"
)

// ErrUnavailable is returned when the resolver is not initialized.
var ErrUnavailable = errors.New("geoip resolver unavailable")

// Resolver provides country and timezone lookups backed by a MaxMind GeoIP2
// City database. A nil Resolver is valid and reports ErrUnavailable, so
// callers can wire lookups without caring whether a database is configured.
type Resolver struct {
	reader *geoip2.Reader
}

// NewResolver opens the GeoIP database at the given path. When the path is empty, nil is returned.
func NewResolver(path string) (*Resolver, error) {
	if strings.TrimSpace(path) == "" {
		return nil, nil
	}
	reader, err := geoip2.Open(path)
	if err != nil {
		return nil, fmt.Errorf("geoip: open database: %w", err)
	}
	return &Resolver{reader: reader}, nil
}

// CountryCode returns the ISO country code for the provided IP.
func (r *Resolver) CountryCode(ip string) (string, error) {
	record, err := r.lookup(ip)
	if err != nil {
		return "", err
	}
	return record.Country.IsoCode, nil
}

// TimeZone returns the IANA timezone name for the provided IP, or an empty
// string when the database has no location for it.
func (r *Resolver) TimeZone(ip string) (string, error) {
	record, err := r.lookup(ip)
	if err != nil {
		return "", err
	}
	return record.Location.TimeZone, nil
}

func (r *Resolver) lookup(ip string) (*geoip2.City, error) {
	if r == nil || r.reader == nil {
		return nil, ErrUnavailable
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return nil, fmt.Errorf("geoip: invalid ip %q", ip)
	}
	record, err := r.reader.City(parsed)
	if err != nil {
		return nil, fmt.Errorf("geoip: lookup city: %w", err)
	}
	return record, nil
}

// Close closes the underlying database reader.
func (r *Resolver) Close() error {
	if r == nil || r.reader == nil {
		return nil
	}
	return r.reader.Close()
}
