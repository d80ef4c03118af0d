package service

import (
	"fmt"
	"net"
	"time"

	"ofs-panel/caching"
	"ofs-panel/config"
	"ofs-panel/database"
	"ofs-panel/database/model"
	"ofs-panel/logger"
	"ofs-panel/util/common"
	"ofs-panel/util/json_util"

	"github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

const lookupTimeout = 5 * time.Second

// SessionTrackService writes best-effort sign-in audit records. Every lookup
// degrades to an empty value on failure; nothing here may block or fail the
// sign-in itself.
type SessionTrackService struct{}

// Record stores one audit row for a successful sign-in. Callers run it in a
// goroutine; errors end up in the log and nowhere else.
func (s *SessionTrackService) Record(userID int, clientIP, userAgent, platform string) {
	defer common.Recover("record session audit")

	ip := clientIP
	if ip == "" || isPrivateIP(ip) {
		ip = s.lookupPublicIP()
	}

	sess := &model.UserSession{
		UserId:       userID,
		IPAddress:    ip,
		DeviceInfo:   json_util.MarshalString(map[string]string{"userAgent": userAgent}),
		PlatformName: platform,
		Location:     s.lookupLocation(ip),
	}

	db := database.GetDB()
	if err := db.Create(sess).Error; err != nil {
		logger.Warning("session tracking err:", err)
	}
}

// ListForUser returns the audit trail for one account, newest-first.
func (s *SessionTrackService) ListForUser(userID int) ([]model.UserSession, error) {
	db := database.GetDB()
	var sessions []model.UserSession
	err := db.Model(model.UserSession{}).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&sessions).Error
	return sessions, err
}

// Prune deletes audit rows older than the retention window. Returns the
// number of rows removed.
func (s *SessionTrackService) Prune(keep time.Duration) (int64, error) {
	db := database.GetDB()
	res := db.Where("created_at < ?", time.Now().Add(-keep)).
		Delete(&model.UserSession{})
	return res.RowsAffected, res.Error
}

// lookupPublicIP asks the configured lookup endpoint for the caller's public
// address. Empty string on any failure.
func (s *SessionTrackService) lookupPublicIP() string {
	client := &fasthttp.Client{}
	code, body, err := client.GetTimeout(nil, config.GetIPLookupURL(), lookupTimeout)
	if err != nil || code != fasthttp.StatusOK {
		logger.Debug("public ip lookup failed:", err)
		return ""
	}
	var payload struct {
		IP string `json:"ip"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		logger.Debug("public ip lookup parse err:", err)
		return ""
	}
	return payload.IP
}

// lookupLocation resolves a coarse geolocation for the IP. Results are cached
// so repeat sign-ins from one address cost a single upstream call. Empty
// string on any failure, including private addresses.
func (s *SessionTrackService) lookupLocation(ip string) string {
	if ip == "" || isPrivateIP(ip) {
		return ""
	}
	if cached, ok := caching.Get("geo:" + ip); ok {
		return cached
	}
	client := &fasthttp.Client{}
	url := fmt.Sprintf(config.GetGeoLookupURL(), ip)
	code, body, err := client.GetTimeout(nil, url, lookupTimeout)
	if err != nil || code != fasthttp.StatusOK {
		logger.Debug("geo lookup failed:", err)
		return ""
	}
	var payload struct {
		Status  string  `json:"status"`
		Country string  `json:"country"`
		City    string  `json:"city"`
		Lat     float64 `json:"lat"`
		Lon     float64 `json:"lon"`
	}
	if err := json.Unmarshal(body, &payload); err != nil || payload.Status != "success" {
		return ""
	}
	location := json_util.MarshalString(map[string]any{
		"country":   payload.Country,
		"city":      payload.City,
		"latitude":  payload.Lat,
		"longitude": payload.Lon,
	})
	caching.Set("geo:"+ip, location)
	return location
}

func isPrivateIP(ip string) bool {
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	return parsed.IsPrivate() || parsed.IsLoopback() || parsed.IsUnspecified()
}
