//go:build unit

package usecase_test

import (
	"context"
	"errors"
	"testing"

	"carreserve/internal/domain/car"
	"carreserve/internal/infra"
	"carreserve/internal/usecase"
	"carreserve/tests/common/builder"
	usecasemock "carreserve/tests/mock/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestCreateCar(t *testing.T) {
	newUseCase := func(t *testing.T) (*usecasemock.MockCarRepository, usecase.CarUseCase) {
		ctrl := gomock.NewController(t)
		carRepo := usecasemock.NewMockCarRepository(ctrl)
		reservationRepo := usecasemock.NewMockReservationRepository(ctrl)
		return carRepo, usecase.NewCarUseCase(carRepo, reservationRepo)
	}

	input := usecase.CreateCarInput{
		Make:        "Subaru",
		Model:       "Outback",
		Year:        2023,
		PlateNumber: "FAM-0003",
	}

	t.Run("登録に成功するとビューが返る", func(t *testing.T) {
		carRepo, uc := newUseCase(t)

		view := builder.NewCarBuilder().With(func(b *builder.CarBuilder) {
			b.Make = "Subaru"
			b.Model = "Outback"
			b.Year = 2023
			b.PlateNumber = "FAM-0003"
		}).BuildView()
		carRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(view, nil)

		got, err := uc.CreateCar(context.Background(), input)
		require.NoError(t, err)
		assert.Equal(t, "FAM-0003", got.PlateNumber)
	})

	t.Run("ドメイン検証に落ちると保存しない", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*usecase.CreateCarInput)
		}{
			{name: "年式が範囲外", mutate: func(i *usecase.CreateCarInput) { i.Year = 1900 }},
			{name: "メーカーが空", mutate: func(i *usecase.CreateCarInput) { i.Make = " " }},
			{name: "ナンバーが空", mutate: func(i *usecase.CreateCarInput) { i.PlateNumber = "" }},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				_, uc := newUseCase(t)

				bad := input
				tc.mutate(&bad)

				_, err := uc.CreateCar(context.Background(), bad)
				require.ErrorIs(t, err, usecase.ErrInvalidCarData)
			})
		}
	})

	t.Run("年式エラーは原因も連鎖に残る", func(t *testing.T) {
		_, uc := newUseCase(t)

		bad := input
		bad.Year = 1900

		_, err := uc.CreateCar(context.Background(), bad)
		require.ErrorIs(t, err, usecase.ErrInvalidCarData)
		assert.ErrorIs(t, err, car.ErrInvalidYear)
	})

	t.Run("ナンバー重複は専用エラーで返す", func(t *testing.T) {
		carRepo, uc := newUseCase(t)

		carRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to create car", nil, infra.KindDuplicateKey))

		_, err := uc.CreateCar(context.Background(), input)
		require.ErrorIs(t, err, usecase.ErrDuplicatePlate)
	})

	t.Run("その他の保存失敗はDB障害として返す", func(t *testing.T) {
		carRepo, uc := newUseCase(t)

		carRepo.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			Return(nil, infra.WrapRepoErr("failed to create car", errors.New("boom")))

		_, err := uc.CreateCar(context.Background(), input)
		require.ErrorIs(t, err, usecase.ErrDatabaseOperationFailed)
	})
}
