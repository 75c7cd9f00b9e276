package log

// Model and operation context.
const (
	// ModelNameKey identifies the estimator type, e.g. "Forest".
	ModelNameKey = "model.name"

	// OperationKey names the operation being performed ("fit", "predict", "grow").
	OperationKey = "ml.operation"

	// ComponentKey identifies the package emitting the record.
	ComponentKey = "component"

	// PhaseKey indicates the lifecycle phase ("training", "validation", "inference").
	PhaseKey = "ml.phase"

	// UserKey identifies the entity group a model is fitted for.
	UserKey = "data.user_id"
)

// Data shape.
const (
	SamplesKey    = "data.samples"
	ValidationKey = "data.validation_samples"
	EntitiesKey   = "data.entities"
	PathKey       = "data.path"
	ProgressKey   = "data.progress"
)

// Forest and tree structure.
const (
	TreesKey      = "forest.trees"
	TreeIndexKey  = "forest.tree_index"
	DepthKey      = "tree.depth"
	LeavesKey     = "tree.leaves"
	NodesKey      = "tree.nodes"
	EntropyKey    = "node.entropy"
	InfoGainKey   = "split.info_gain"
	CandidatesKey = "split.candidates"
	PredicateKey  = "split.predicate"
)

// Hyperparameters.
const (
	KKey          = "hyperparams.k"
	KDivKey       = "hyperparams.k_div"
	MaxDepthKey   = "hyperparams.max_depth"
	EntropyThKey  = "hyperparams.entropy_th"
	InfoGainThKey = "hyperparams.ig_th"
	RandomSeedKey = "config.random_seed"
	WorkersKey    = "config.workers"
	ConfigPathKey = "config.path"
)

// Metrics and timing.
const (
	DurationMsKey = "perf.duration_ms"
	MAEKey        = "metrics.mae"
	RMSEKey       = "metrics.rmse"
	ExactKey      = "metrics.exact_share"
	PredsKey      = "preds.count"
)

// Error context.
const (
	ErrorCodeKey = "error.code"
)

// Standard attribute values.
const (
	OperationFit     = "fit"
	OperationPredict = "predict"
	OperationGrow    = "grow"

	PhaseTraining   = "training"
	PhaseValidation = "validation"
	PhaseInference  = "inference"

	ErrorNotFitted     = "NOT_FITTED"
	ErrorUnknownEntity = "UNKNOWN_ENTITY"
	ErrorInsufficient  = "INSUFFICIENT_DATA"
)
