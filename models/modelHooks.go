package models

import (
	"fmt"

	"github.com/mkulima/dairyfarm_backend/config"
	"github.com/mkulima/dairyfarm_backend/utils"
	"gorm.io/gorm"
)

// Validation hooks run on every write path, so records created by reactors
// (pregnancies, recoveries) pass through the same gates as client input.
// Reactor hooks run inside the transaction of the write that fired them: a
// failing reactor rolls the whole write back.

// ---------------------------------------------------------------- Cow

func (c *Cow) BeforeSave(tx *gorm.DB) error {
	return ValidateCowStatusConsistency(c.Gender, c.AvailabilityStatus,
		c.CurrentPregnancyStatus, c.CurrentProductionStatus)
}

func (c *Cow) AfterSave(tx *gorm.DB) error {
	return RefreshCowInventory(tx)
}

func (c *Cow) AfterDelete(tx *gorm.DB) error {
	return RefreshCowInventory(tx)
}

// ---------------------------------------------------------------- CowInventory

// AfterUpdate appends the history row. Deliberately not AfterSave: the lazy
// first-time create of the empty inventory row is not a herd change.
func (inv *CowInventory) AfterUpdate(tx *gorm.DB) error {
	history := CowInventoryUpdateHistory{
		NumberOfCows: inv.TotalNumberOfCows,
	}
	return tx.Create(&history).Error
}

func (inv *CowInventory) AfterSave(tx *gorm.DB) error {
	// drop the cached snapshot; the next read repopulates it post-commit
	if err := config.DeleteRedisKey(cowInventoryCacheKey); err != nil {
		config.LogError(config.GetLogger(), "models", "CowInventoryAfterSave",
			"invalidate inventory cache", inv.ID, err)
	}
	return nil
}

// ---------------------------------------------------------------- Health

func (w *WeightRecord) BeforeSave(tx *gorm.DB) error {
	return w.validateWeightRecord(tx)
}

func (c *CullingRecord) BeforeSave(tx *gorm.DB) error {
	return c.validateCullingRecord(tx)
}

// AfterCreate marks the culled cow. Idempotent: a cow already marked is left
// alone.
func (c *CullingRecord) AfterCreate(tx *gorm.DB) error {
	var cow Cow
	if err := tx.First(&cow, c.CowId).Error; err != nil {
		return utils.NewReactorError("culling_status", err)
	}
	if cow.CurrentProductionStatus == CowProductionStatusCulled &&
		cow.CurrentPregnancyStatus == CowPregnancyStatusUnavailable {
		return nil
	}
	cow.CurrentProductionStatus = CowProductionStatusCulled
	cow.CurrentPregnancyStatus = CowPregnancyStatusUnavailable
	if err := tx.Save(&cow).Error; err != nil {
		return utils.NewReactorError("culling_status", err)
	}
	return nil
}

func (q *QuarantineRecord) BeforeSave(tx *gorm.DB) error {
	return q.validateQuarantineRecord(tx)
}

func (q *QuarantineRecord) AfterCreate(tx *gorm.DB) error {
	var cow Cow
	if err := tx.First(&cow, q.CowId).Error; err != nil {
		return utils.NewReactorError("quarantine_status", err)
	}
	if cow.AvailabilityStatus == CowAvailabilityQuarantined {
		return nil
	}
	cow.AvailabilityStatus = CowAvailabilityQuarantined
	if err := tx.Save(&cow).Error; err != nil {
		return utils.NewReactorError("quarantine_status", err)
	}
	return nil
}

func (t *Treatment) BeforeSave(tx *gorm.DB) error {
	return t.validateTreatment(tx)
}

// AfterSave closes the matching Recovery once a completion date lands. The
// recovery is expected to exist from when the cow was linked to the disease;
// its absence means the disease linkage was bypassed.
func (t *Treatment) AfterSave(tx *gorm.DB) error {
	if t.CompletionDate == nil {
		return nil
	}

	var recovery Recovery
	err := tx.Where("cow_id = ? AND disease_id = ?", t.CowId, t.DiseaseId).
		First(&recovery).Error
	if err != nil {
		reactorErr := utils.NewReactorError("treatment_completion",
			fmt.Errorf("no recovery found for cow %d and disease %d: %w", t.CowId, t.DiseaseId, err))
		config.LogError(config.GetLogger(), "models", "TreatmentAfterSave",
			"close recovery", t.ID, reactorErr)
		return reactorErr
	}
	if recovery.RecoveryDate != nil {
		return nil
	}
	recovery.RecoveryDate = t.CompletionDate
	if err := tx.Save(&recovery).Error; err != nil {
		return utils.NewReactorError("treatment_completion", err)
	}
	return nil
}

// ---------------------------------------------------------------- Reproduction

func (h *Heat) BeforeSave(tx *gorm.DB) error {
	return h.validateHeat(tx)
}

func (i *Insemination) BeforeSave(tx *gorm.DB) error {
	return i.validateInsemination(tx)
}

// AfterSave opens a Pregnancy for a successful attempt that has none yet.
// The unique index on pregnancy_id plus this nil check keep it at one
// pregnancy per attempt no matter how often the record is re-saved.
func (i *Insemination) AfterSave(tx *gorm.DB) error {
	if i.Success == nil || !*i.Success || i.PregnancyId != nil {
		return nil
	}

	pregnancy := Pregnancy{
		CowId:           i.CowId,
		StartDate:       utils.DateOnly(i.DateOfInsemination),
		PregnancyStatus: PregnancyStatusUnconfirmed,
	}
	if err := tx.Create(&pregnancy).Error; err != nil {
		return utils.NewReactorError("insemination_pregnancy", err)
	}
	// UpdateColumn skips hooks, no point re-validating the insemination
	err := tx.Model(&Insemination{}).Where("id = ?", i.ID).
		UpdateColumn("pregnancy_id", pregnancy.ID).Error
	if err != nil {
		return utils.NewReactorError("insemination_pregnancy", err)
	}
	i.PregnancyId = &pregnancy.ID
	return nil
}

func (p *Pregnancy) BeforeSave(tx *gorm.DB) error {
	return p.validatePregnancy(tx)
}

// AfterSave keeps the cow's statuses in step with the pregnancy and, on a
// calving, rolls the lactation over.
func (p *Pregnancy) AfterSave(tx *gorm.DB) error {
	var cow Cow
	if err := tx.First(&cow, p.CowId).Error; err != nil {
		return utils.NewReactorError("pregnancy_status", err)
	}

	switch {
	case p.open():
		if cow.CurrentPregnancyStatus == CowPregnancyStatusPregnant {
			return nil
		}
		cow.CurrentPregnancyStatus = CowPregnancyStatusPregnant
		if cow.CurrentProductionStatus == CowProductionStatusOpen {
			cow.CurrentProductionStatus = CowProductionStatusPregnantNotLactating
		}
		if err := tx.Save(&cow).Error; err != nil {
			return utils.NewReactorError("pregnancy_status", err)
		}
		return nil

	case p.DateOfCalving != nil:
		if cow.CurrentPregnancyStatus != CowPregnancyStatusCalved {
			cow.CurrentPregnancyStatus = CowPregnancyStatusCalved
			cow.CurrentProductionStatus = CowProductionStatusLactating
			if err := tx.Save(&cow).Error; err != nil {
				return utils.NewReactorError("pregnancy_status", err)
			}
		}
		return p.rolloverLactationOnce(tx)

	default: // failed, no calving
		if cow.CurrentPregnancyStatus != CowPregnancyStatusPregnant {
			return nil
		}
		cow.CurrentPregnancyStatus = CowPregnancyStatusOpen
		if cow.CurrentProductionStatus == CowProductionStatusPregnantNotLactating {
			cow.CurrentProductionStatus = CowProductionStatusOpen
		}
		if err := tx.Save(&cow).Error; err != nil {
			return utils.NewReactorError("pregnancy_status", err)
		}
		return nil
	}
}

// rolloverLactationOnce fires the lactation rollover exactly once per
// calving, keyed on the pregnancy id.
func (p *Pregnancy) rolloverLactationOnce(tx *gorm.DB) error {
	var count int64
	err := tx.Model(&Lactation{}).Where("pregnancy_id = ?", p.ID).Count(&count).Error
	if err != nil {
		return utils.NewReactorError("calving_lactation", err)
	}
	if count > 0 {
		return nil
	}
	if err := rolloverLactation(tx, p.CowId, p.ID, *p.DateOfCalving); err != nil {
		return utils.NewReactorError("calving_lactation", err)
	}
	return nil
}
