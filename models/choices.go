package models

// Closed vocabularies for the dairy domain. Every enumerated field carries
// one of these types and is checked for membership before a write.

type CowBreed string

const (
	CowBreedFriesian   CowBreed = "Friesian"
	CowBreedAyrshire   CowBreed = "Ayrshire"
	CowBreedJersey     CowBreed = "Jersey"
	CowBreedGuernsey   CowBreed = "Guernsey"
	CowBreedSahiwal    CowBreed = "Sahiwal"
	CowBreedCrossbreed CowBreed = "Crossbreed"
)

func (b CowBreed) Valid() bool {
	switch b {
	case CowBreedFriesian, CowBreedAyrshire, CowBreedJersey,
		CowBreedGuernsey, CowBreedSahiwal, CowBreedCrossbreed:
		return true
	}
	return false
}

type Sex string

const (
	SexMale   Sex = "Male"
	SexFemale Sex = "Female"
)

func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

type CowAvailability string

const (
	CowAvailabilityAlive       CowAvailability = "Alive"
	CowAvailabilitySold        CowAvailability = "Sold"
	CowAvailabilityDead        CowAvailability = "Dead"
	CowAvailabilityQuarantined CowAvailability = "Quarantined"
)

func (a CowAvailability) Valid() bool {
	switch a {
	case CowAvailabilityAlive, CowAvailabilitySold, CowAvailabilityDead, CowAvailabilityQuarantined:
		return true
	}
	return false
}

type CowPregnancyStatus string

const (
	CowPregnancyStatusOpen        CowPregnancyStatus = "Open"
	CowPregnancyStatusPregnant    CowPregnancyStatus = "Pregnant"
	CowPregnancyStatusCalved      CowPregnancyStatus = "Calved"
	CowPregnancyStatusUnavailable CowPregnancyStatus = "Unavailable"
)

func (p CowPregnancyStatus) Valid() bool {
	switch p {
	case CowPregnancyStatusOpen, CowPregnancyStatusPregnant,
		CowPregnancyStatusCalved, CowPregnancyStatusUnavailable:
		return true
	}
	return false
}

type CowProductionStatus string

const (
	CowProductionStatusOpen                 CowProductionStatus = "Open"
	CowProductionStatusPregnantNotLactating CowProductionStatus = "Pregnant not Lactating"
	CowProductionStatusLactating            CowProductionStatus = "Lactating"
	CowProductionStatusDry                  CowProductionStatus = "Dry"
	CowProductionStatusCulled               CowProductionStatus = "Culled"
)

func (p CowProductionStatus) Valid() bool {
	switch p {
	case CowProductionStatusOpen, CowProductionStatusPregnantNotLactating,
		CowProductionStatusLactating, CowProductionStatusDry, CowProductionStatusCulled:
		return true
	}
	return false
}

type CullingReason string

const (
	// medical
	CullingReasonInjuries      CullingReason = "Injuries"
	CullingReasonChronicHealth CullingReason = "Chronic Health Issues"
	// financial
	CullingReasonCostOfCare      CullingReason = "Cost Of Care"
	CullingReasonUnprofitable    CullingReason = "Unprofitable"
	CullingReasonLowMarketDemand CullingReason = "Low Market Demand"
	// production
	CullingReasonAge                       CullingReason = "Age"
	CullingReasonConsistentLowProduction   CullingReason = "Consistent Low Production"
	CullingReasonConsistentPoorQuality     CullingReason = "Low Quality"
	CullingReasonInefficientFeedConversion CullingReason = "Inefficient Feed Conversion"
	// genetic
	CullingReasonInheritedDiseases CullingReason = "Inherited Diseases"
	CullingReasonInbreeding        CullingReason = "Inbreeding"
	CullingReasonUnwantedTraits    CullingReason = "Unwanted Traits"
	// environmental
	CullingReasonClimateChange   CullingReason = "Climate Change"
	CullingReasonNaturalDisaster CullingReason = "Natural Disaster"
	CullingReasonOverpopulation  CullingReason = "Overpopulation"
	// legal
	CullingReasonGovernmentRegulations     CullingReason = "Government Regulations"
	CullingReasonAnimalWelfareStandards    CullingReason = "Animal Welfare Standards"
	CullingReasonEnvironmentProtectionLaws CullingReason = "Environmental Protection Laws"
)

func (r CullingReason) Valid() bool {
	switch r {
	case CullingReasonInjuries, CullingReasonChronicHealth,
		CullingReasonCostOfCare, CullingReasonUnprofitable, CullingReasonLowMarketDemand,
		CullingReasonAge, CullingReasonConsistentLowProduction, CullingReasonConsistentPoorQuality,
		CullingReasonInefficientFeedConversion,
		CullingReasonInheritedDiseases, CullingReasonInbreeding, CullingReasonUnwantedTraits,
		CullingReasonClimateChange, CullingReasonNaturalDisaster, CullingReasonOverpopulation,
		CullingReasonGovernmentRegulations, CullingReasonAnimalWelfareStandards,
		CullingReasonEnvironmentProtectionLaws:
		return true
	}
	return false
}

type QuarantineReason string

const (
	QuarantineReasonSickCow   QuarantineReason = "Sick Cow"
	QuarantineReasonBoughtCow QuarantineReason = "Bought Cow"
	QuarantineReasonNewCow    QuarantineReason = "New Cow"
	QuarantineReasonCalving   QuarantineReason = "Calving"
)

func (r QuarantineReason) Valid() bool {
	switch r {
	case QuarantineReasonSickCow, QuarantineReasonBoughtCow,
		QuarantineReasonNewCow, QuarantineReasonCalving:
		return true
	}
	return false
}

type PathogenName string

const (
	PathogenNameBacteria PathogenName = "Bacteria"
	PathogenNameVirus    PathogenName = "Virus"
	PathogenNameFungi    PathogenName = "Fungi"
	PathogenNameUnknown  PathogenName = "Unknown"
)

func (n PathogenName) Valid() bool {
	switch n {
	case PathogenNameBacteria, PathogenNameVirus, PathogenNameFungi, PathogenNameUnknown:
		return true
	}
	return false
}

type DiseaseCategoryName string

const (
	DiseaseCategoryNameNutrition     DiseaseCategoryName = "Nutrition"
	DiseaseCategoryNameInfectious    DiseaseCategoryName = "Infectious"
	DiseaseCategoryNamePhysiological DiseaseCategoryName = "Physiological"
	DiseaseCategoryNameGenetic       DiseaseCategoryName = "Genetic"
)

func (n DiseaseCategoryName) Valid() bool {
	switch n {
	case DiseaseCategoryNameNutrition, DiseaseCategoryNameInfectious,
		DiseaseCategoryNamePhysiological, DiseaseCategoryNameGenetic:
		return true
	}
	return false
}

type SymptomType string

const (
	SymptomTypeRespiratory     SymptomType = "Respiratory"
	SymptomTypeDigestive       SymptomType = "Digestive"
	SymptomTypeReproductive    SymptomType = "Reproductive"
	SymptomTypePhysical        SymptomType = "Physical"
	SymptomTypeMusculoskeletal SymptomType = "Musculoskeletal"
	SymptomTypeMetabolic       SymptomType = "Metabolic"
	SymptomTypeOther           SymptomType = "Other"
)

func (t SymptomType) Valid() bool {
	switch t {
	case SymptomTypeRespiratory, SymptomTypeDigestive, SymptomTypeReproductive,
		SymptomTypePhysical, SymptomTypeMusculoskeletal, SymptomTypeMetabolic, SymptomTypeOther:
		return true
	}
	return false
}

type SymptomSeverity string

const (
	SymptomSeverityMild     SymptomSeverity = "Mild"
	SymptomSeverityModerate SymptomSeverity = "Moderate"
	SymptomSeveritySevere   SymptomSeverity = "Severe"
)

func (s SymptomSeverity) Valid() bool {
	switch s {
	case SymptomSeverityMild, SymptomSeverityModerate, SymptomSeveritySevere:
		return true
	}
	return false
}

type SymptomLocation string

const (
	SymptomLocationHead      SymptomLocation = "Head"
	SymptomLocationNeck      SymptomLocation = "Neck"
	SymptomLocationChest     SymptomLocation = "Chest"
	SymptomLocationAbdomen   SymptomLocation = "Abdomen"
	SymptomLocationBack      SymptomLocation = "Back"
	SymptomLocationLegs      SymptomLocation = "Legs"
	SymptomLocationTail      SymptomLocation = "Tail"
	SymptomLocationWholeBody SymptomLocation = "Whole body"
	SymptomLocationOther     SymptomLocation = "Other"
)

func (l SymptomLocation) Valid() bool {
	switch l {
	case SymptomLocationHead, SymptomLocationNeck, SymptomLocationChest,
		SymptomLocationAbdomen, SymptomLocationBack, SymptomLocationLegs,
		SymptomLocationTail, SymptomLocationWholeBody, SymptomLocationOther:
		return true
	}
	return false
}

type TreatmentStatus string

const (
	TreatmentStatusScheduled  TreatmentStatus = "Scheduled"
	TreatmentStatusInProgress TreatmentStatus = "In Progress"
	TreatmentStatusCompleted  TreatmentStatus = "Completed"
	TreatmentStatusCancelled  TreatmentStatus = "Cancelled"
	TreatmentStatusPostponed  TreatmentStatus = "Postponed"
)

func (s TreatmentStatus) Valid() bool {
	switch s {
	case TreatmentStatusScheduled, TreatmentStatusInProgress, TreatmentStatusCompleted,
		TreatmentStatusCancelled, TreatmentStatusPostponed:
		return true
	}
	return false
}

type PregnancyStatus string

const (
	PregnancyStatusUnconfirmed PregnancyStatus = "Unconfirmed"
	PregnancyStatusConfirmed   PregnancyStatus = "Confirmed"
	PregnancyStatusFailed      PregnancyStatus = "Failed"
)

func (s PregnancyStatus) Valid() bool {
	switch s {
	case PregnancyStatusUnconfirmed, PregnancyStatusConfirmed, PregnancyStatusFailed:
		return true
	}
	return false
}

type PregnancyOutcome string

const (
	PregnancyOutcomeLive        PregnancyOutcome = "Live"
	PregnancyOutcomeStillborn   PregnancyOutcome = "Stillborn"
	PregnancyOutcomeMiscarriage PregnancyOutcome = "Miscarriage"
)

func (o PregnancyOutcome) Valid() bool {
	switch o {
	case PregnancyOutcomeLive, PregnancyOutcomeStillborn, PregnancyOutcomeMiscarriage:
		return true
	}
	return false
}

type UserRole string

const (
	UserRoleOwner            UserRole = "owner"
	UserRoleManager          UserRole = "manager"
	UserRoleAssistantManager UserRole = "assistant_manager"
	UserRoleTeamLeader       UserRole = "team_leader"
	UserRoleWorker           UserRole = "worker"
)

func (r UserRole) Valid() bool {
	switch r {
	case UserRoleOwner, UserRoleManager, UserRoleAssistantManager, UserRoleTeamLeader, UserRoleWorker:
		return true
	}
	return false
}
