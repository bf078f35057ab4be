package service

import (
	"context"
	"log"
	"strings"

	"jeopardai/internal/cache"
	"jeopardai/internal/model"
	"jeopardai/internal/repository"
	"jeopardai/internal/rules"
)

// JudgeService is the answer judging engine. Each call is an independent
// synchronous pipeline: lookup -> rule match -> (optional) build+evaluate
// -> verdict. Deterministic special rules always win over AI judgment; the
// evaluator is only consulted when no rule fires. Stateless per call.
type JudgeService struct {
	repo      repository.ClueRepo
	clues     cache.ClueCache
	verdicts  cache.VerdictCache
	matcher   *rules.Matcher
	evaluator Evaluator
}

// NewJudgeService creates the judging engine. Either cache may be nil, in
// which case every lookup and judgment goes to the backing collaborator.
func NewJudgeService(repo repository.ClueRepo, clues cache.ClueCache, verdicts cache.VerdictCache, matcher *rules.Matcher, evaluator Evaluator) *JudgeService {
	return &JudgeService{
		repo:      repo,
		clues:     clues,
		verdicts:  verdicts,
		matcher:   matcher,
		evaluator: evaluator,
	}
}

// JudgeAnswer judges a submitted answer for a clue.
//
// Errors: *model.ValidationError on empty input, model.ErrClueNotFound when
// the clue does not exist, and *model.EvaluatorError unchanged from the
// semantic evaluator — the engine adds no recovery or fallback.
func (s *JudgeService) JudgeAnswer(ctx context.Context, clueID, userAnswer string) (*model.Verdict, error) {
	if clueID == "" {
		return nil, model.NewValidationError("clueId is required")
	}
	if strings.TrimSpace(userAnswer) == "" {
		return nil, model.NewValidationError("userAnswer is required")
	}

	clue, err := s.lookupClue(ctx, clueID)
	if err != nil {
		return nil, err
	}
	if clue == nil {
		return nil, model.ErrClueNotFound
	}

	// Deterministic override rules are adjudicated first and bypass the
	// evaluator entirely.
	if verdict, ok := s.matcher.Match(clue.Category, userAnswer, clue.CorrectAnswer); ok {
		return verdict, nil
	}

	if verdict := s.cachedVerdict(ctx, clueID, userAnswer); verdict != nil {
		return verdict, nil
	}

	jc := BuildJudgmentContext(clue, userAnswer, s.matcher)
	verdict, err := s.evaluator.Judge(ctx, jc)
	if err != nil {
		return nil, err
	}

	if s.verdicts != nil {
		if err := s.verdicts.Set(ctx, clueID, userAnswer, verdict); err != nil {
			log.Printf("verdict cache set failed for clue %s: %v", clueID, err)
		}
	}
	return verdict, nil
}

// lookupClue reads through the clue cache. Cache failures degrade to a
// repository read.
func (s *JudgeService) lookupClue(ctx context.Context, clueID string) (*model.Clue, error) {
	if s.clues != nil {
		clue, err := s.clues.Get(ctx, clueID)
		if err != nil {
			log.Printf("clue cache get failed for %s: %v", clueID, err)
		} else if clue != nil {
			return clue, nil
		}
	}

	clue, err := s.repo.GetByID(ctx, clueID)
	if err != nil {
		return nil, err
	}
	if clue != nil && s.clues != nil {
		if err := s.clues.Set(ctx, clue); err != nil {
			log.Printf("clue cache set failed for %s: %v", clueID, err)
		}
	}
	return clue, nil
}

// cachedVerdict returns a previously judged verdict for the identical
// submission, if any. Only successful verdicts are ever cached, so a hit
// can never mask an evaluator failure.
func (s *JudgeService) cachedVerdict(ctx context.Context, clueID, userAnswer string) *model.Verdict {
	if s.verdicts == nil {
		return nil
	}
	verdict, err := s.verdicts.Get(ctx, clueID, userAnswer)
	if err != nil {
		log.Printf("verdict cache get failed for clue %s: %v", clueID, err)
		return nil
	}
	return verdict
}
