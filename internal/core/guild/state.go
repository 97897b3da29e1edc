// Package guild holds the guild-wide game state: the gold ledger, the
// reserved progression counters, time and offline settings, and the
// snapshot that bundles them with the quest board and the adventurers.
package guild

import (
	"time"

	"github.com/example/guildmaster/internal/core/offline"
	"github.com/example/guildmaster/internal/core/quest"
)

// SaveVersion is stamped on every snapshot.
const SaveVersion = "1.0.0"

// StartingGold is the purse of a new guild.
const StartingGold = 100

// TimeSettings controls the real-time scheduler.
type TimeSettings struct {
	Enabled    bool    `json:"enabled"`
	TimeScale  float64 `json:"timeScale"`
	LastUpdate int64   `json:"lastUpdate"`
}

// State is the ledger plus the guild-wide globals. Influence, guild fame and
// the prestige fields are carried through saves but nothing changes them yet.
type State struct {
	Version            string         `json:"version"`
	Timestamp          int64          `json:"timestamp"`
	Gold               float64        `json:"gold"`
	Influence          float64        `json:"influence"`
	GuildFame          float64        `json:"guildFame"`
	TotalEarnings      float64        `json:"totalEarnings"`
	LifetimeEarnings   float64        `json:"lifetimeEarnings"`
	PrestigeLevel      int            `json:"prestigeLevel"`
	PrestigeMultiplier float64        `json:"prestigeMultiplier"`
	CurrentLocation    string         `json:"currentLocation"`
	Time               TimeSettings   `json:"time"`
	OfflineEarnings    offline.Config `json:"offlineEarnings"`
}

// NewState returns the state of a freshly founded guild.
func NewState(now time.Time) State {
	ms := now.UnixMilli()
	return State{
		Version:            SaveVersion,
		Timestamp:          ms,
		Gold:               StartingGold,
		PrestigeMultiplier: 1,
		CurrentLocation:    quest.LocationStarterShack,
		Time: TimeSettings{
			Enabled:    true,
			TimeScale:  1,
			LastUpdate: ms,
		},
		OfflineEarnings: offline.DefaultConfig(),
	}
}

// CanAfford reports whether the purse covers cost.
func (s State) CanAfford(cost int64) bool {
	return quest.CanAfford(s.Gold, cost)
}

// Debit removes cost from the purse. It reports false and changes nothing
// when the purse is short.
func (s *State) Debit(cost int64) bool {
	if !s.CanAfford(cost) {
		return false
	}
	s.Gold -= float64(cost)
	return true
}

// Credit adds earned gold to the purse and both earnings counters.
func (s *State) Credit(amount int64) {
	if amount <= 0 {
		return
	}
	s.Gold += float64(amount)
	s.TotalEarnings += float64(amount)
	s.LifetimeEarnings += float64(amount)
}

// LastPersisted returns the snapshot timestamp as a time.
func (s State) LastPersisted() time.Time {
	return time.UnixMilli(s.Timestamp)
}

func (s *State) heal() {
	if s.Version == "" {
		s.Version = SaveVersion
	}
	if s.PrestigeMultiplier <= 0 {
		s.PrestigeMultiplier = 1
	}
	if s.PrestigeLevel < 0 {
		s.PrestigeLevel = 0
	}
	if s.CurrentLocation == "" {
		s.CurrentLocation = quest.LocationStarterShack
	}
	if s.Time.TimeScale <= 0 {
		s.Time.TimeScale = 1
	}
	if s.OfflineEarnings.MaxDuration < 0 {
		s.OfflineEarnings.MaxDuration = offline.DefaultMaxDurationMs
	}
	if s.OfflineEarnings.Rate < 0 {
		s.OfflineEarnings.Rate = 0
	}
}
