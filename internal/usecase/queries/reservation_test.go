//go:build unit

package queries_test

import (
	"context"
	"errors"
	"testing"

	"glamping-api/internal/infra"
	"glamping-api/internal/pkg/errs"
	"glamping-api/internal/usecase/queries"
	"glamping-api/internal/usecase/shared"
	queriesmock "glamping-api/tests/mock/queries"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func notFound() error {
	return infra.WrapRepoErr("not found", errors.New("no rows"), infra.KindNotFound)
}

func strPtr(s string) *string { return &s }

func TestCheckBooking(t *testing.T) {
	tests := []struct {
		name     string
		code     string
		email    string
		setup    func(m *queriesmock.MockReservationReadStore)
		wantCode string
		wantErr  error
	}{
		{
			name:  "コードは大文字に正規化して検索する",
			code:  " gc-ab12cd34 ",
			email: " guest@example.com ",
			setup: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByCodeAndEmail(gomock.Any(), "GC-AB12CD34", "guest@example.com").
					Return(&queries.ReservationView{BookingCode: "GC-AB12CD34"}, nil)
			},
			wantCode: "GC-AB12CD34",
		},
		{
			name:    "形式が不正なコードはストアを呼ばずにNotFound",
			code:    "ABC",
			email:   "guest@example.com",
			setup:   func(m *queriesmock.MockReservationReadStore) {},
			wantErr: errs.ErrNotFound,
		},
		{
			name:  "メールが一致しない場合はNotFound",
			code:  "GC-AB12CD34",
			email: "other@example.com",
			setup: func(m *queriesmock.MockReservationReadStore) {
				m.EXPECT().FindByCodeAndEmail(gomock.Any(), "GC-AB12CD34", "other@example.com").Return(nil, notFound())
			},
			wantErr: errs.ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)
			tt.setup(store)

			view, err := queries.NewReservationQueries(store).CheckBooking(context.Background(), tt.code, tt.email)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.True(t, errs.Is(err, tt.wantErr))
				assert.Nil(t, view)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantCode, view.BookingCode)
		})
	}
}

func TestGetReservationByID(t *testing.T) {
	t.Run("存在しない予約はErrReservationNotFound", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		id := uuid.New()
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, notFound())

		_, err := queries.NewReservationQueries(store).GetByID(context.Background(), id)

		assert.True(t, errs.Is(err, queries.ErrReservationNotFound))
	})

	t.Run("DB障害はそのまま返す", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		store := queriesmock.NewMockReservationReadStore(ctrl)
		id := uuid.New()
		dbErr := infra.WrapRepoErr("find reservation", errors.New("connection reset"))
		store.EXPECT().FindByID(gomock.Any(), id).Return(nil, dbErr)

		_, err := queries.NewReservationQueries(store).GetByID(context.Background(), id)

		require.Error(t, err)
		assert.False(t, errs.Is(err, errs.ErrNotFound))
		assert.True(t, infra.IsKind(err, infra.KindDBFailure))
	})
}

func TestListReservations(t *testing.T) {
	tests := []struct {
		name      string
		filter    queries.ReservationFilter
		want      queries.ReservationFilter
		wantField string
	}{
		{
			name:   "未指定はデフォルトのページング",
			filter: queries.ReservationFilter{},
			want:   queries.ReservationFilter{Page: 1, PerPage: queries.DefaultPerPage},
		},
		{
			name:   "per_pageは上限で切り詰める",
			filter: queries.ReservationFilter{Page: 3, PerPage: 500},
			want:   queries.ReservationFilter{Page: 3, PerPage: queries.MaxPerPage},
		},
		{
			name:   "空白だけの検索語と空のステータスは無視する",
			filter: queries.ReservationFilter{Search: strPtr("   "), Status: strPtr("")},
			want:   queries.ReservationFilter{Page: 1, PerPage: queries.DefaultPerPage},
		},
		{
			name:   "検索語はトリムする",
			filter: queries.ReservationFilter{Search: strPtr("  Budi "), Status: strPtr("confirmed")},
			want:   queries.ReservationFilter{Search: strPtr("Budi"), Status: strPtr("confirmed"), Page: 1, PerPage: queries.DefaultPerPage},
		},
		{
			name:      "不明なステータスはバリデーションエラー",
			filter:    queries.ReservationFilter{Status: strPtr("archived")},
			wantField: "status",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			store := queriesmock.NewMockReservationReadStore(ctrl)

			if tt.wantField == "" {
				store.EXPECT().List(gomock.Any(), tt.want).Return([]*queries.ReservationListItem{{BookingCode: "GC-AB12CD34"}}, int64(41), nil)
			}

			page, err := queries.NewReservationQueries(store).List(context.Background(), tt.filter)

			if tt.wantField != "" {
				fields, ok := shared.AsValidationError(err)
				require.True(t, ok)
				assert.NotEmpty(t, fields[tt.wantField])
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(41), page.Total)
			assert.Equal(t, tt.want.Page, page.Page)
			assert.Equal(t, tt.want.PerPage, page.PerPage)
			assert.Len(t, page.Items, 1)
		})
	}
}

func TestReservationPage(t *testing.T) {
	assert.Equal(t, 3, queries.ReservationPage{Total: 41, PerPage: 20}.LastPage())
	assert.Equal(t, 1, queries.ReservationPage{Total: 0, PerPage: 20}.LastPage())
	assert.Equal(t, 2, queries.ReservationPage{Total: 40, PerPage: 20}.LastPage())

	f := queries.ReservationFilter{Page: 3, PerPage: 20}
	assert.Equal(t, int32(20), f.Limit())
	assert.Equal(t, int32(40), f.Offset())
}
