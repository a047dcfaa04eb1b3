package onboarding_test

import (
	"context"
	"errors"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"

	"schoolapp-backend/errs"
	"schoolapp-backend/onboarding"
)

type countStub struct {
	counts map[string]int64
	err    error
}

func (s *countStub) CountByType(ctx context.Context, usertype string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return s.counts[usertype], nil
}

var _ = Describe("Sequencer", func() {
	Specify("prefixes and zero-pads per type", func() {
		seq := onboarding.NewSequencer(&countStub{counts: map[string]int64{
			"student": 0,
			"teacher": 41,
			"admin":   7,
			"parent":  123456788,
		}})

		id, err := seq.Next(context.Background(), "student")
		Expect(err).To(BeNil())
		Expect(id).To(Equal("st000000001"))

		id, err = seq.Next(context.Background(), "teacher")
		Expect(err).To(BeNil())
		Expect(id).To(Equal("te000000042"))

		id, err = seq.Next(context.Background(), "admin")
		Expect(err).To(BeNil())
		Expect(id).To(Equal("ad000000008"))

		id, err = seq.Next(context.Background(), "parent")
		Expect(err).To(BeNil())
		Expect(id).To(Equal("pr123456789"))
	})

	Specify("rejects unknown types", func() {
		seq := onboarding.NewSequencer(&countStub{counts: map[string]int64{}})
		_, err := seq.Next(context.Background(), "janitor")
		Expect(err).To(MatchError(errs.ErrInvalidUserType))
	})

	Specify("propagates counter failures", func() {
		seq := onboarding.NewSequencer(&countStub{err: errors.New("count failed")})
		_, err := seq.Next(context.Background(), "student")
		Expect(err).To(MatchError("count failed"))
	})
})
