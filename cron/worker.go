// Package cron hosts background maintenance jobs.
package cron

import (
	"time"

	"fixly/config"
	"fixly/database/repository"
	"fixly/services/availability"
	"fixly/utils"

	"github.com/robfig/cron/v3"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// StartBlackoutPruner schedules a job that drops blackout dates already in
// the past from every profile. The schedule comes from config
// (BlackoutPruneSpec, default nightly).
func StartBlackoutPruner(repo repository.HandymanRepository) *cron.Cron {
	spec := config.AppConfig.BlackoutPruneSpec
	if spec == "" {
		spec = "0 3 * * *"
	}

	c := cron.New()
	_, err := c.AddFunc(spec, func() {
		PruneExpiredBlackouts(repo, time.Now())
	})
	if err != nil {
		utils.GetLogger().Error("failed to schedule blackout pruner", zap.Error(err))
		return c
	}
	c.Start()
	utils.GetLogger().Info("blackout pruner scheduled", zap.String("spec", spec))
	return c
}

// PruneExpiredBlackouts removes blackout entries dated before today. Dates
// are lexicographically comparable in the YYYY-MM-DD layout.
func PruneExpiredBlackouts(repo repository.HandymanRepository, now time.Time) {
	logger := utils.GetLogger()
	today := now.Format(availability.DateLayout)

	profiles, err := repo.GetAll()
	if err != nil {
		logger.Error("blackout prune: failed to list handymen", zap.Error(err))
		return
	}

	pruned := 0
	for i := range profiles {
		p := &profiles[i]
		kept := p.Availability.BlackoutDates[:0:0]
		for _, b := range p.Availability.BlackoutDates {
			if b.Date >= today {
				kept = append(kept, b)
			}
		}
		if len(kept) == len(p.Availability.BlackoutDates) {
			continue
		}
		patch := bson.M{"$set": bson.M{"availability.blackoutDates": kept}}
		if err := repo.UpdateWithDocument(p.ID, patch); err != nil {
			logger.Error("blackout prune: failed to update profile",
				zap.String("profileID", p.ID), zap.Error(err))
			continue
		}
		pruned++
	}

	if pruned > 0 {
		logger.Info("blackout prune complete", zap.Int("profilesUpdated", pruned))
	}
}
