// Package raw defines the typed input graph for the portfolio decision
// engine: companies, people, firms, rounds, deals, goals, relationships,
// metric facts, meetings, and the append-only event/outcome logs. Nothing
// in this package may be derived; every field here is a fact as reported,
// never a computed value.
package raw

import "time"

// Stage is the fixed VC stage sequence. Ordinal position matters: several
// derive-layer rules compare stages by index, not by name.
type Stage string

const (
	StagePreSeed   Stage = "pre-seed"
	StageSeed      Stage = "seed"
	StageSeriesA   Stage = "series-a"
	StageSeriesB   Stage = "series-b"
	StageSeriesC   Stage = "series-c"
	StageSeriesD   Stage = "series-d"
)

// stageOrder is the canonical ordinal table. Populated once; never mutated.
var stageOrder = map[Stage]int{
	StagePreSeed: 0,
	StageSeed:    1,
	StageSeriesA: 2,
	StageSeriesB: 3,
	StageSeriesC: 4,
	StageSeriesD: 5,
}

// Ordinal returns the stage's position in the fixed sequence, or -1 if the
// stage is not recognized.
func (s Stage) Ordinal() int {
	if o, ok := stageOrder[s]; ok {
		return o
	}
	return -1
}

// Company is a portfolio or prospect company. Exactly one of MRR/ARR is
// ever populated (P7) — HasMRR/HasARR disambiguate a legitimate zero from
// "not reported".
type Company struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Stage        Stage     `json:"stage"`
	Sector       string    `json:"sector"`
	Cash         float64   `json:"cash"`
	Burn         float64   `json:"burn"`
	Employees    int       `json:"employees"`
	MRR          float64   `json:"mrr,omitempty"`
	HasMRR       bool      `json:"hasMrr"`
	ARR          float64   `json:"arr,omitempty"`
	HasARR       bool      `json:"hasArr"`
	Revenue      float64   `json:"revenue,omitempty"`
	HasRevenue   bool      `json:"hasRevenue"`
	Raising      bool      `json:"raising"`
	RoundTarget  float64   `json:"roundTarget,omitempty"`
	IsPortfolio  bool      `json:"isPortfolio"`
	GoalIDs      []string  `json:"goalIds"`
	DealIDs      []string  `json:"dealIds"`
	AsOf         time.Time `json:"asOf"`
	Provenance   string    `json:"provenance"`
}

// OrgKind tags the organization a Person primarily belongs to.
type OrgKind string

const (
	OrgCompany  OrgKind = "company"
	OrgFirm     OrgKind = "firm"
	OrgExternal OrgKind = "external"
	OrgInvestor OrgKind = "investor"
)

// Person is a natural person in the relationship graph.
type Person struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	OrgID   string   `json:"orgId"`
	OrgKind OrgKind  `json:"orgKind"`
	Role    string   `json:"role"`
	Tags    []string `json:"tags"`
}

// Firm is an investing entity.
type Firm struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	ThesisStages []Stage  `json:"thesisStages"`
	ThesisSectors []string `json:"thesisSectors"`
	PartnerIDs   []string `json:"partnerIds"`
	PortfolioIDs []string `json:"portfolioIds"`
}

// Round is a fundraising round for a company.
type Round struct {
	ID       string  `json:"id"`
	CompanyID string `json:"companyId"`
	Stage    Stage   `json:"stage"`
	Target   float64 `json:"target"`
	Raised   float64 `json:"raised"`
	Status   string  `json:"status"`
	LeadInvestorID string `json:"leadInvestorId,omitempty"`
}

// DealStatus is the fixed deal-pipeline status sequence.
type DealStatus string

const (
	DealOutreach  DealStatus = "outreach"
	DealMeeting   DealStatus = "meeting"
	DealDD        DealStatus = "dd"
	DealTermsheet DealStatus = "termsheet"
	DealClosed    DealStatus = "closed"
	DealPassed    DealStatus = "passed"
)

// Deal is one firm's participation in a round.
type Deal struct {
	ID               string     `json:"id"`
	RoundID          string     `json:"roundId"`
	CompanyID        string     `json:"companyId"`
	FirmID           string     `json:"firmId"`
	Amount           float64    `json:"amount"`
	Status           DealStatus `json:"status"`
	CloseProbability int        `json:"closeProbability"` // 0-100
	OutreachAt       *time.Time `json:"outreachAt,omitempty"`
	MeetingAt        *time.Time `json:"meetingAt,omitempty"`
	LastTouchAt      *time.Time `json:"lastTouchAt,omitempty"`
	CloseTargetAt    *time.Time `json:"closeTargetAt,omitempty"`
}

// GoalType is the fixed goal-type enumeration.
type GoalType string

const (
	GoalFundraise          GoalType = "fundraise"
	GoalRevenue            GoalType = "revenue"
	GoalProduct            GoalType = "product"
	GoalHiring             GoalType = "hiring"
	GoalPartnership        GoalType = "partnership"
	GoalOperational        GoalType = "operational"
	GoalRetention          GoalType = "retention"
	GoalEfficiency         GoalType = "efficiency"
	GoalCustomerGrowth     GoalType = "customer_growth"
	GoalDealClose          GoalType = "deal_close"
	GoalRoundCompletion    GoalType = "round_completion"
	GoalInvestorActivation GoalType = "investor_activation"
	GoalChampionCultivation GoalType = "champion_cultivation"
	GoalRelationshipBuild  GoalType = "relationship_build"
	GoalIntroTarget        GoalType = "intro_target"
)

// GoalStatus is the fixed goal lifecycle.
type GoalStatus string

const (
	GoalActive    GoalStatus = "active"
	GoalCompleted GoalStatus = "completed"
	GoalBlocked   GoalStatus = "blocked"
	GoalAbandoned GoalStatus = "abandoned"
)

// Goal is a company objective tracked toward a numeric target.
type Goal struct {
	ID        string     `json:"id"`
	CompanyID string     `json:"companyId"`
	Type      GoalType   `json:"type"`
	Target    float64    `json:"target"`
	Current   float64    `json:"current"`
	DueDate   time.Time  `json:"dueDate"`
	Status    GoalStatus `json:"status"`
	Weight    *float64   `json:"weight,omitempty"` // user-set override, nil = unset
}

// GoalSnapshot is one time-ordered observation of a goal's progress, used
// by the trajectory derivation (spec §4.2).
type GoalSnapshot struct {
	GoalID string    `json:"goalId"`
	AsOf   time.Time `json:"asOf"`
	Value  float64   `json:"value"`
}

// RelationshipType is the fixed relationship-edge type enumeration.
type RelationshipType string

const (
	RelBoard           RelationshipType = "board"
	RelProfessional    RelationshipType = "professional"
	RelAlumni          RelationshipType = "alumni"
	RelCoInvestor      RelationshipType = "co-investor"
	RelMentor          RelationshipType = "mentor"
	RelFriend          RelationshipType = "friend"
	RelFormerColleague RelationshipType = "former-colleague"
)

// Relationship is an undirected social edge between two people.
type Relationship struct {
	ID          string           `json:"id"`
	PersonA     string           `json:"personA"`
	PersonB     string           `json:"personB"`
	Type        RelationshipType `json:"type"`
	Strength    int              `json:"strength"` // 0-100
	LastTouchAt *time.Time       `json:"lastTouchAt,omitempty"`
	IntroCount90d int            `json:"introCount90d"`
}

// MetricUnit enumerates the units a MetricFact may carry.
type MetricUnit string

const (
	UnitUSD     MetricUnit = "usd"
	UnitCount   MetricUnit = "count"
	UnitPercent MetricUnit = "percent"
	UnitDays    MetricUnit = "days"
	UnitRatio   MetricUnit = "ratio"
)

// MetricSource enumerates where a MetricFact observation came from.
type MetricSource string

const (
	SourceManual   MetricSource = "manual"
	SourceIntegration MetricSource = "integration"
	SourceImport   MetricSource = "import"
	SourceDerived  MetricSource = "derived" // forbidden as a raw-input value; present for completeness of the enum only
)

// MetricKey is the closed set of raw metric keys a MetricFact may report.
// Derived keys (runway, health, etc.) are never valid here; see
// raw.ForbiddenFields and ValidateNoForbiddenFields.
type MetricKey string

const (
	MetricCash      MetricKey = "cash"
	MetricBurn      MetricKey = "burn"
	MetricMRR       MetricKey = "mrr"
	MetricARR       MetricKey = "arr"
	MetricRevenue   MetricKey = "revenue"
	MetricEmployees MetricKey = "employees"
	MetricChurn     MetricKey = "churn_rate"
	MetricNPS       MetricKey = "nps"
	MetricCAC       MetricKey = "cac"
	MetricLTV       MetricKey = "ltv"
)

// MetricFact is one observed value of one metric for one company at one
// point in time. Unique on (CompanyID, Key, AsOf).
type MetricFact struct {
	ID        string       `json:"id"`
	CompanyID string       `json:"companyId"`
	Key       MetricKey    `json:"key"`
	Value     float64      `json:"value"`
	Unit      MetricUnit   `json:"unit"`
	Source    MetricSource `json:"source"`
	AsOf      time.Time    `json:"asOf"`
}

// ActionEventType is the fixed append-only event-type enumeration.
type ActionEventType string

const (
	EventCreated        ActionEventType = "created"
	EventAssigned       ActionEventType = "assigned"
	EventStarted        ActionEventType = "started"
	EventCompleted      ActionEventType = "completed"
	EventOutcomeRecorded ActionEventType = "outcome_recorded"
	EventFollowupCreated ActionEventType = "followup_created"
	EventNoteAdded      ActionEventType = "note_added"
	EventExecuted       ActionEventType = "executed"
	EventSkipped        ActionEventType = "skipped"
)

// Outcome is the payload-level signal a recorded outcome carries. Not a
// derived field: it is reported directly by the caller as part of the
// event payload, and is whitelisted accordingly.
type Outcome string

const (
	OutcomeSuccess  Outcome = "success"
	OutcomeFailure  Outcome = "failure"
	OutcomeAbandoned Outcome = "abandoned"
)

// ActionEvent is one append-only entry in the action history log. Payload
// must never contain a forbidden-derived key (spec §6, §7).
type ActionEvent struct {
	ID        string                 `json:"id"`
	ActionID  string                 `json:"actionId"`
	Type      ActionEventType        `json:"type"`
	Timestamp time.Time              `json:"timestamp"`
	Actor     string                 `json:"actor"`
	Payload   map[string]interface{} `json:"payload"`
}

// IntroPathType enumerates how an introduction was made.
type IntroPathType string

const (
	PathDirect    IntroPathType = "direct"
	PathOneHop    IntroPathType = "one_hop"
	PathTwoHop    IntroPathType = "two_hop"
)

// IntroOutcomeStatus is split into terminal and non-terminal states; see
// IsTerminal.
type IntroOutcomeStatus string

const (
	IntroSent     IntroOutcomeStatus = "sent"
	IntroReplied  IntroOutcomeStatus = "replied"
	IntroMeeting  IntroOutcomeStatus = "meeting"
	IntroPositive IntroOutcomeStatus = "positive"
	IntroNegative IntroOutcomeStatus = "negative"
	IntroGhosted  IntroOutcomeStatus = "ghosted"
)

// IsTerminal reports whether the status is one of the three terminal
// outcomes consumed by calibration (spec §4.3).
func (s IntroOutcomeStatus) IsTerminal() bool {
	return s == IntroPositive || s == IntroNegative || s == IntroGhosted
}

// IsSuccess reports whether a terminal status counts as a calibration
// success. Only IntroPositive does.
func (s IntroOutcomeStatus) IsSuccess() bool {
	return s == IntroPositive
}

// IntroOutcome records the terminal (or in-flight) result of one
// introduction, used by the Bayesian priors calibration.
type IntroOutcome struct {
	ID            string             `json:"id"`
	IntroducerID  string             `json:"introducerId"`
	TargetID      string             `json:"targetId"`
	PathType      IntroPathType      `json:"pathType"`
	IntroKind     string             `json:"introKind"` // free-form label, e.g. "fundraise", "partnership"
	Status        IntroOutcomeStatus `json:"status"`
}

// DismissalReason is the fixed dismissal-reason enumeration, used to key
// obviousness-penalty strength/half-life (spec §4.4.3).
type DismissalReason string

const (
	ReasonNotNow        DismissalReason = "not_now"
	ReasonNotRelevant   DismissalReason = "not_relevant"
	ReasonAlreadyDoing  DismissalReason = "already_doing"
	ReasonDisagree      DismissalReason = "disagree"
)

// DismissalEvent records a user's rejection of a previously surfaced
// action.
type DismissalEvent struct {
	ID         string          `json:"id"`
	ActionID   string          `json:"actionId"`
	Reason     DismissalReason `json:"reason"`
	UserID     string          `json:"userId"`
	Timestamp  time.Time       `json:"timestamp"`
	CompanyID  string          `json:"companyId"`
	GoalID     string          `json:"goalId,omitempty"`
	SourceType string          `json:"sourceType"`
}

// Meeting is a raw note of a conversation. SummaryFormat tags whether
// Summary needs HTML extraction before it is readable prose; see
// internal/narrate/meetingtext.go. Meetings never contribute a derived
// field — only plain context for narration and relationship staleness.
type Meeting struct {
	ID             string    `json:"id"`
	Title          string    `json:"title"`
	Date           time.Time `json:"date"`
	ParticipantIDs []string  `json:"participantIds"`
	Summary        string    `json:"summary"`
	SummaryFormat  string    `json:"summaryFormat"` // "plain" | "markdown" | "html"
}

// Graph bundles the full raw input graph consumed by Compute. All slices
// are treated as immutable by the engine.
type Graph struct {
	Companies      []Company       `json:"companies"`
	People         []Person        `json:"people"`
	Firms          []Firm          `json:"firms"`
	Rounds         []Round         `json:"rounds"`
	Deals          []Deal          `json:"deals"`
	Goals          []Goal          `json:"goals"`
	GoalSnapshots  []GoalSnapshot  `json:"goalSnapshots"`
	Relationships  []Relationship  `json:"relationships"`
	MetricFacts    []MetricFact    `json:"metricFacts"`
	IntroOutcomes  []IntroOutcome  `json:"introOutcomes"`
	Dismissals     []DismissalEvent `json:"dismissals"`
	Meetings       []Meeting       `json:"meetings"`
}
