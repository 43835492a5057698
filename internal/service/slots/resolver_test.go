package slots

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ParkingService/internal/config"
	"github.com/m04kA/SMC-ParkingService/internal/domain"
	areaRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/area"
	spaceRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/space"
)

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type fakeSpaceRepo struct {
	byNumber map[string]*domain.Space
	created  []*domain.Space

	createErr error
	nextID    int64

	// totalOverride подменяет результат Count, имитируя места,
	// созданные вне этого фейка (например, массовым созданием)
	totalOverride int

	// missOnce заставляет GetByNumber один раз промахнуться мимо номера,
	// имитируя строку, появившуюся между проверкой и вставкой
	missOnce map[string]bool
}

func newFakeSpaceRepo(existing ...*domain.Space) *fakeSpaceRepo {
	r := &fakeSpaceRepo{byNumber: make(map[string]*domain.Space), nextID: 100}
	for _, s := range existing {
		r.byNumber[s.Number] = s
	}
	return r
}

func (r *fakeSpaceRepo) GetByNumber(_ context.Context, number string) (*domain.Space, error) {
	if r.missOnce[number] {
		delete(r.missOnce, number)
		return nil, spaceRepo.ErrSpaceNotFound
	}
	if s, ok := r.byNumber[number]; ok {
		return s, nil
	}
	return nil, spaceRepo.ErrSpaceNotFound
}

func (r *fakeSpaceRepo) Create(_ context.Context, space *domain.Space) (*domain.Space, error) {
	if r.createErr != nil {
		return nil, r.createErr
	}
	if _, ok := r.byNumber[space.Number]; ok {
		return nil, spaceRepo.ErrDuplicateNumber
	}
	r.nextID++
	created := *space
	created.ID = r.nextID
	r.byNumber[space.Number] = &created
	r.created = append(r.created, &created)
	return &created, nil
}

func (r *fakeSpaceRepo) Count(_ context.Context) (int, error) {
	if r.totalOverride > 0 {
		return r.totalOverride, nil
	}
	return len(r.byNumber), nil
}

type fakeAreaRepo struct {
	byName map[string]*domain.Area
	any    *domain.Area
}

func (r *fakeAreaRepo) GetByName(_ context.Context, name string) (*domain.Area, error) {
	if a, ok := r.byName[name]; ok {
		return a, nil
	}
	return nil, areaRepo.ErrAreaNotFound
}

func (r *fakeAreaRepo) GetAny(_ context.Context) (*domain.Area, error) {
	if r.any == nil {
		return nil, areaRepo.ErrNoAreas
	}
	return r.any, nil
}

func testBands() []config.Band {
	return []config.Band{
		{Low: 1, High: 20, Area: "A"},
		{Low: 21, High: 40, Area: "B"},
		{Low: 41, High: 60, Area: "C"},
		{Low: 61, High: 80, Area: "D"},
		{Low: 81, High: 100, Area: "E"},
	}
}

func TestResolver_Resolve(t *testing.T) {
	ctx := context.Background()

	t.Run("существующее место возвращается без создания", func(t *testing.T) {
		existing := &domain.Space{ID: 7, Number: "15", AreaID: 1}
		spaces := newFakeSpaceRepo(existing)
		areas := &fakeAreaRepo{byName: map[string]*domain.Area{"A": {ID: 1, Name: "A"}}}

		r := NewResolver(spaces, areas, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		got, err := r.Resolve(ctx, "15")
		require.NoError(t, err)
		assert.Equal(t, existing, got)
		assert.Empty(t, spaces.created)
	})

	t.Run("существующий нечисловой номер возвращается как есть", func(t *testing.T) {
		existing := &domain.Space{ID: 8, Number: "A-15", AreaID: 1}
		spaces := newFakeSpaceRepo(existing)
		areas := &fakeAreaRepo{}

		r := NewResolver(spaces, areas, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		got, err := r.Resolve(ctx, "A-15")
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("новый слот создается в зоне из таблицы диапазонов", func(t *testing.T) {
		spaces := newFakeSpaceRepo()
		areas := &fakeAreaRepo{byName: map[string]*domain.Area{
			"A": {ID: 1, Name: "A"},
			"C": {ID: 3, Name: "C"},
		}}

		r := NewResolver(spaces, areas, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		got, err := r.Resolve(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, "42", got.Number)
		assert.Equal(t, int64(3), got.AreaID)
		assert.Equal(t, domain.SpaceAvailable, got.Status)
		assert.NotEmpty(t, got.QRCode)
		require.Len(t, spaces.created, 1)
	})

	t.Run("граница диапазона: 20 в A, 21 в B", func(t *testing.T) {
		spaces := newFakeSpaceRepo()
		areas := &fakeAreaRepo{byName: map[string]*domain.Area{
			"A": {ID: 1, Name: "A"},
			"B": {ID: 2, Name: "B"},
		}}

		r := NewResolver(spaces, areas, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		low, err := r.Resolve(ctx, "20")
		require.NoError(t, err)
		assert.Equal(t, int64(1), low.AreaID)

		high, err := r.Resolve(ctx, "21")
		require.NoError(t, err)
		assert.Equal(t, int64(2), high.AreaID)
	})

	t.Run("нечисловой новый слот отклоняется", func(t *testing.T) {
		r := NewResolver(newFakeSpaceRepo(), &fakeAreaRepo{}, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		_, err := r.Resolve(ctx, "abc")
		assert.ErrorIs(t, err, ErrInvalidSlotNumber)
	})

	t.Run("номер вне адресуемого диапазона отклоняется", func(t *testing.T) {
		r := NewResolver(newFakeSpaceRepo(), &fakeAreaRepo{}, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		_, err := r.Resolve(ctx, "0")
		assert.ErrorIs(t, err, ErrInvalidSlotNumber)

		_, err = r.Resolve(ctx, "101")
		assert.ErrorIs(t, err, ErrInvalidSlotNumber)
	})

	t.Run("зоны из таблицы нет - берется произвольная существующая", func(t *testing.T) {
		spaces := newFakeSpaceRepo()
		fallback := &domain.Area{ID: 9, Name: "Z"}
		areas := &fakeAreaRepo{byName: map[string]*domain.Area{}, any: fallback}

		r := NewResolver(spaces, areas, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		got, err := r.Resolve(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, int64(9), got.AreaID)
	})

	t.Run("зон нет вообще - ErrNoAreasDefined", func(t *testing.T) {
		r := NewResolver(newFakeSpaceRepo(), &fakeAreaRepo{byName: map[string]*domain.Area{}}, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		_, err := r.Resolve(ctx, "42")
		assert.ErrorIs(t, err, ErrNoAreasDefined)
	})

	t.Run("авто-создание сверх общего потолка отклоняется", func(t *testing.T) {
		// 100 мест уже существуют (например, созданы массово с префиксом),
		// слот "42" среди их номеров не встречается
		spaces := newFakeSpaceRepo()
		spaces.totalOverride = domain.TotalSpaceCapacity
		areas := &fakeAreaRepo{byName: map[string]*domain.Area{"C": {ID: 3, Name: "C"}}}

		r := NewResolver(spaces, areas, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		_, err := r.Resolve(ctx, "42")
		assert.ErrorIs(t, err, ErrCapacityExceeded)
		assert.Empty(t, spaces.created)
	})

	t.Run("авто-создание ровно до потолка проходит", func(t *testing.T) {
		spaces := newFakeSpaceRepo()
		spaces.totalOverride = domain.TotalSpaceCapacity - 1
		areas := &fakeAreaRepo{byName: map[string]*domain.Area{"C": {ID: 3, Name: "C"}}}

		r := NewResolver(spaces, areas, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		got, err := r.Resolve(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, "42", got.Number)
	})

	t.Run("существующее место возвращается и при заполненном потолке", func(t *testing.T) {
		existing := &domain.Space{ID: 7, Number: "15", AreaID: 1}
		spaces := newFakeSpaceRepo(existing)
		spaces.totalOverride = domain.TotalSpaceCapacity

		r := NewResolver(spaces, &fakeAreaRepo{}, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		got, err := r.Resolve(ctx, "15")
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("проигранная гонка за номер переиспользует существующую строку", func(t *testing.T) {
		winner := &domain.Space{ID: 55, Number: "42", AreaID: 3}
		spaces := newFakeSpaceRepo()
		areas := &fakeAreaRepo{byName: map[string]*domain.Area{"C": {ID: 3, Name: "C"}}}

		r := NewResolver(spaces, areas, testBands(), domain.TotalSpaceCapacity, noopLogger{})

		// Строка появляется между GetByNumber и Create
		spaces.createErr = spaceRepo.ErrDuplicateNumber
		spaces.byNumber["42"] = winner
		spaces.missOnce = map[string]bool{"42": true}

		got, err := r.Resolve(ctx, "42")
		require.NoError(t, err)
		assert.Equal(t, winner, got)
	})
}
