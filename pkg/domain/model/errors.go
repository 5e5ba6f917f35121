package model

import "github.com/m-mizutani/goerr/v2"

// Sentinel errors for domain operations
var (
	ErrIncompleteEvaluation = goerr.New("evaluation is missing answers")
	ErrSessionNotFound      = goerr.New("grooming session not found")
	ErrSessionCompleted     = goerr.New("grooming session is already completed")
	ErrScoreNotFound        = goerr.New("score result not found")
	ErrNotEstimable         = goerr.New("item is not refined enough to estimate")
	ErrInvalidStoryPoints   = goerr.New("story points must be on the estimation scale")
)
