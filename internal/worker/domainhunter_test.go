package worker_test

import (
	"context"
	"errors"
	"net"
	"testing"
	"time"

	"github.com/riverqueue/river"
	"github.com/riverqueue/river/rivertype"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"leadhunter/internal/hunter"
	"leadhunter/internal/hunter/pipeline"
	"leadhunter/internal/verifier"
	"leadhunter/internal/worker"
	mockbrowser "leadhunter/pkg/browser/mock"
	"leadhunter/pkg/domain"
	"leadhunter/pkg/logger"
	"leadhunter/pkg/storage"
	mockstorage "leadhunter/pkg/storage/mock"
)

func TestMain(m *testing.M) {
	logger.Setup(logger.DevelopmentEnvironment)
	m.Run()
}

// noMXResolver makes every candidate mailbox resolve to nothing, so full
// pipeline runs in these tests admit zero leads without touching the network.
type noMXResolver struct{}

func (noMXResolver) LookupMX(_ context.Context, _ string) ([]*net.MX, error) {
	return nil, nil
}

func makeJob(id int64, fqdn string) *river.Job[hunter.JobArgs] {
	return &river.Job[hunter.JobArgs]{
		JobRow: &rivertype.JobRow{ID: id},
		Args:   hunter.JobArgs{Domain: fqdn, FallbackCompanyName: "acme"},
	}
}

func testWorkerOptions() worker.Options {
	return worker.Options{
		Pipeline: pipeline.Options{
			PageTimeout:     time.Second,
			MaxContactPages: 2,
			ProfileFloor:    1,
			ProfileCeiling:  10,
			QueryInterval:   time.Millisecond,
		},
		MaxAttempts: 3,
		MaxWorkers:  1,
	}
}

func newTestWorker(t *testing.T) (*gomock.Controller, *mockstorage.MockStorage, *mockbrowser.MockLauncher, *worker.DomainHunterWorker) {
	t.Helper()

	ctrl := gomock.NewController(t)
	st := mockstorage.NewMockStorage(ctrl)
	launcher := mockbrowser.NewMockLauncher(ctrl)
	v := verifier.New(noMXResolver{}, nil, verifier.Options{SessionTimeout: time.Second})

	w := worker.NewDomainHunterWorker(st, launcher, nil, v, testWorkerOptions())

	return ctrl, st, launcher, w
}

func TestDomainHunterWorker_Work_SkipsWhenNoPendingScans(t *testing.T) {
	_, st, _, w := newTestWorker(t)

	st.EXPECT().PendingScanCountByDomain(gomock.Any(), "acme.com.br").Return(int64(0), nil)

	require.NoError(t, w.Work(context.Background(), makeJob(1, "acme.com.br")))
}

func TestDomainHunterWorker_Work_CancelsWhenCompanyMissing(t *testing.T) {
	_, st, _, w := newTestWorker(t)

	st.EXPECT().PendingScanCountByDomain(gomock.Any(), "acme.com.br").Return(int64(1), nil)
	st.EXPECT().CompanyByDomain(gomock.Any(), "acme.com.br").Return(nil, nil)

	err := w.Work(context.Background(), makeJob(2, "acme.com.br"))
	require.Error(t, err)
	var cancelErr *river.JobCancelError
	require.ErrorAs(t, err, &cancelErr)
}

func TestDomainHunterWorker_Work_BrowserFailureFailsPendingScans(t *testing.T) {
	_, st, launcher, w := newTestWorker(t)

	company := domain.Company{Domain: "acme.com.br"}
	st.EXPECT().PendingScanCountByDomain(gomock.Any(), "acme.com.br").Return(int64(1), nil)
	st.EXPECT().CompanyByDomain(gomock.Any(), "acme.com.br").Return(&company, nil)
	launcher.EXPECT().NewContext(gomock.Any()).Return(nil, errors.New("browser down"))
	st.EXPECT().UpdatePendingScansByDomain(gomock.Any(), "acme.com.br", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.ScanUpdates) error {
			require.Equal(t, domain.ScanStatusFailed, updates.Status)
			require.NotNil(t, updates.LastError)
			require.Equal(t, 3, updates.MaxAttempts)

			return nil
		},
	)

	err := w.Work(context.Background(), makeJob(3, "acme.com.br"))
	require.Error(t, err)
}

func TestDomainHunterWorker_Work_CompletesPendingScans(t *testing.T) {
	ctrl, st, launcher, w := newTestWorker(t)

	// the site and every search query fail to load; all remaining candidates
	// are generic guesses that the no-MX verifier rejects, so the run
	// completes with zero leads.
	pager := mockbrowser.NewMockPager(ctrl)
	pager.EXPECT().Fetch(gomock.Any(), gomock.Any()).Return(nil, errors.New("unreachable")).AnyTimes()
	pager.EXPECT().Close().Return(nil)

	company := domain.Company{Domain: "acme.com.br"}
	st.EXPECT().PendingScanCountByDomain(gomock.Any(), "acme.com.br").Return(int64(1), nil)
	st.EXPECT().CompanyByDomain(gomock.Any(), "acme.com.br").Return(&company, nil)
	launcher.EXPECT().NewContext(gomock.Any()).Return(pager, nil)
	st.EXPECT().CompanyLeadCount(gomock.Any(), company.ID).Return(int64(0), nil)
	st.EXPECT().UpdatePendingScansByDomain(gomock.Any(), "acme.com.br", gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, updates storage.ScanUpdates) error {
			require.Equal(t, domain.ScanStatusCompleted, updates.Status)
			require.NotNil(t, updates.LeadCount)
			require.Equal(t, 0, *updates.LeadCount)

			return nil
		},
	)

	require.NoError(t, w.Work(context.Background(), makeJob(4, "acme.com.br")))
}
