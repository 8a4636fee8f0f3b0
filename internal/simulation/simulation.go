// simulation/simulation.go
package simulation

import (
	"context"
	"fmt"

	"github.com/frqgrade/backend/internal/service"
	"github.com/frqgrade/backend/internal/worker"
)

// GradeOutcome is what one simulated grading job produces.
type GradeOutcome struct {
	QuestionNumber string
	Result         *service.GradeResult
	Err            error
}

// Run drives sample FRQ requests through the real grading pipeline using a
// small worker pool, then prints the outcomes. It needs a live inference
// backend; use it as a manual smoke test, never as part of the request path
// (the HTTP batch endpoint stays strictly sequential).
func Run(svc *service.GradingService) {
	requests := sampleRequests()

	pool := worker.NewPool[GradeOutcome](3, len(requests))

	for _, req := range requests {
		r := req
		pool.Submit(r.QuestionNumber, func() GradeOutcome {
			result, err := svc.Grade(context.Background(), r)
			return GradeOutcome{QuestionNumber: r.QuestionNumber, Result: result, Err: err}
		})
	}

	defer pool.Close()

	for range requests {
		outcome := (<-pool.Results()).Output
		if outcome.Err != nil {
			fmt.Printf("%s: grading failed: %v\n", outcome.QuestionNumber, outcome.Err)
			continue
		}
		res := outcome.Result
		fmt.Printf("%s: %.1f/%.1f (%.0f%%)\n", outcome.QuestionNumber, res.Score, res.MaxPoints, res.Percentage)
		fmt.Printf("  feedback: %s\n", res.Feedback)
		for criterion, weight := range res.RubricAlignment {
			fmt.Printf("  - %s: %.2f\n", criterion, weight)
		}
	}
}

// sampleRequests returns one strong and one weak answer to the same AP
// Biology question, so a working backend visibly separates them.
func sampleRequests() []service.GradeRequest {
	questionPrompt := `Explain how the process of natural selection leads to evolution.
Include in your answer:
1. The mechanism of natural selection
2. How variation arises in populations
3. How selection pressure affects allele frequencies`

	rubric := `Scoring Rubric (10 points total):

Natural Selection Mechanism (4 points):
- Correctly explains that individuals with advantageous traits survive and reproduce (2 points)
- Describes how traits are passed to offspring (1 point)
- Mentions differential survival/reproduction (1 point)

Variation (3 points):
- Explains that variation comes from mutations and/or sexual reproduction (2 points)
- Mentions genetic variation in populations (1 point)

Allele Frequency Changes (3 points):
- Explains that advantageous alleles increase in frequency (2 points)
- Connects selection to population-level changes (1 point)`

	strongAnswer := `Natural selection is the process where organisms with traits that help them survive
are more likely to reproduce and pass those traits to their offspring. Over time,
this leads to changes in the population. Variation comes from mutations and genetic
recombination during sexual reproduction. When certain traits are advantageous,
the alleles for those traits become more common in the population, which is evolution.`

	weakAnswer := `Evolution happens because animals want to get better at surviving,
so they change over their lifetime and their babies are born already changed.`

	return []service.GradeRequest{
		{
			StudentResponse: strongAnswer,
			Rubric:          rubric,
			QuestionPrompt:  questionPrompt,
			MaxPoints:       10,
			QuestionNumber:  "Q1-strong",
		},
		{
			StudentResponse: weakAnswer,
			Rubric:          rubric,
			QuestionPrompt:  questionPrompt,
			MaxPoints:       10,
			QuestionNumber:  "Q1-weak",
		},
	}
}
