package mocks

import (
	context "context"

	domain "ad-budget/internal/core/domain"

	mock "github.com/stretchr/testify/mock"
)

// MockLedgerStore is an autogenerated mock type for the LedgerStore type
type MockLedgerStore struct {
	mock.Mock
}

type MockLedgerStore_Expecter struct {
	mock *mock.Mock
}

func (_m *MockLedgerStore) EXPECT() *MockLedgerStore_Expecter {
	return &MockLedgerStore_Expecter{mock: &_m.Mock}
}

// GetBrand provides a mock function with given fields: ctx, id
func (_m *MockLedgerStore) GetBrand(ctx context.Context, id int64) (*domain.Brand, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetBrand")
	}

	var r0 *domain.Brand
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Brand, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Brand); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Brand)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerStore_GetBrand_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetBrand'
type MockLedgerStore_GetBrand_Call struct {
	*mock.Call
}

// GetBrand is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockLedgerStore_Expecter) GetBrand(ctx interface{}, id interface{}) *MockLedgerStore_GetBrand_Call {
	return &MockLedgerStore_GetBrand_Call{Call: _e.mock.On("GetBrand", ctx, id)}
}

func (_c *MockLedgerStore_GetBrand_Call) Run(run func(ctx context.Context, id int64)) *MockLedgerStore_GetBrand_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockLedgerStore_GetBrand_Call) Return(_a0 *domain.Brand, _a1 error) *MockLedgerStore_GetBrand_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerStore_GetBrand_Call) RunAndReturn(run func(context.Context, int64) (*domain.Brand, error)) *MockLedgerStore_GetBrand_Call {
	_c.Call.Return(run)
	return _c
}

// GetCampaignWithBrand provides a mock function with given fields: ctx, id
func (_m *MockLedgerStore) GetCampaignWithBrand(ctx context.Context, id int64) (*domain.Campaign, error) {
	ret := _m.Called(ctx, id)

	if len(ret) == 0 {
		panic("no return value specified for GetCampaignWithBrand")
	}

	var r0 *domain.Campaign
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context, int64) (*domain.Campaign, error)); ok {
		return rf(ctx, id)
	}
	if rf, ok := ret.Get(0).(func(context.Context, int64) *domain.Campaign); ok {
		r0 = rf(ctx, id)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).(*domain.Campaign)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context, int64) error); ok {
		r1 = rf(ctx, id)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerStore_GetCampaignWithBrand_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'GetCampaignWithBrand'
type MockLedgerStore_GetCampaignWithBrand_Call struct {
	*mock.Call
}

// GetCampaignWithBrand is a helper method to define mock.On call
//   - ctx context.Context
//   - id int64
func (_e *MockLedgerStore_Expecter) GetCampaignWithBrand(ctx interface{}, id interface{}) *MockLedgerStore_GetCampaignWithBrand_Call {
	return &MockLedgerStore_GetCampaignWithBrand_Call{Call: _e.mock.On("GetCampaignWithBrand", ctx, id)}
}

func (_c *MockLedgerStore_GetCampaignWithBrand_Call) Run(run func(ctx context.Context, id int64)) *MockLedgerStore_GetCampaignWithBrand_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(int64))
	})
	return _c
}

func (_c *MockLedgerStore_GetCampaignWithBrand_Call) Return(_a0 *domain.Campaign, _a1 error) *MockLedgerStore_GetCampaignWithBrand_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerStore_GetCampaignWithBrand_Call) RunAndReturn(run func(context.Context, int64) (*domain.Campaign, error)) *MockLedgerStore_GetCampaignWithBrand_Call {
	_c.Call.Return(run)
	return _c
}

// ListBrands provides a mock function with given fields: ctx
func (_m *MockLedgerStore) ListBrands(ctx context.Context) ([]domain.Brand, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListBrands")
	}

	var r0 []domain.Brand
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.Brand, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Brand); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Brand)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerStore_ListBrands_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListBrands'
type MockLedgerStore_ListBrands_Call struct {
	*mock.Call
}

// ListBrands is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockLedgerStore_Expecter) ListBrands(ctx interface{}) *MockLedgerStore_ListBrands_Call {
	return &MockLedgerStore_ListBrands_Call{Call: _e.mock.On("ListBrands", ctx)}
}

func (_c *MockLedgerStore_ListBrands_Call) Run(run func(ctx context.Context)) *MockLedgerStore_ListBrands_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockLedgerStore_ListBrands_Call) Return(_a0 []domain.Brand, _a1 error) *MockLedgerStore_ListBrands_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerStore_ListBrands_Call) RunAndReturn(run func(context.Context) ([]domain.Brand, error)) *MockLedgerStore_ListBrands_Call {
	_c.Call.Return(run)
	return _c
}

// ListCampaignsWithBrandAndSchedule provides a mock function with given fields: ctx
func (_m *MockLedgerStore) ListCampaignsWithBrandAndSchedule(ctx context.Context) ([]domain.Campaign, error) {
	ret := _m.Called(ctx)

	if len(ret) == 0 {
		panic("no return value specified for ListCampaignsWithBrandAndSchedule")
	}

	var r0 []domain.Campaign
	var r1 error
	if rf, ok := ret.Get(0).(func(context.Context) ([]domain.Campaign, error)); ok {
		return rf(ctx)
	}
	if rf, ok := ret.Get(0).(func(context.Context) []domain.Campaign); ok {
		r0 = rf(ctx)
	} else {
		if ret.Get(0) != nil {
			r0 = ret.Get(0).([]domain.Campaign)
		}
	}

	if rf, ok := ret.Get(1).(func(context.Context) error); ok {
		r1 = rf(ctx)
	} else {
		r1 = ret.Error(1)
	}

	return r0, r1
}

// MockLedgerStore_ListCampaignsWithBrandAndSchedule_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'ListCampaignsWithBrandAndSchedule'
type MockLedgerStore_ListCampaignsWithBrandAndSchedule_Call struct {
	*mock.Call
}

// ListCampaignsWithBrandAndSchedule is a helper method to define mock.On call
//   - ctx context.Context
func (_e *MockLedgerStore_Expecter) ListCampaignsWithBrandAndSchedule(ctx interface{}) *MockLedgerStore_ListCampaignsWithBrandAndSchedule_Call {
	return &MockLedgerStore_ListCampaignsWithBrandAndSchedule_Call{Call: _e.mock.On("ListCampaignsWithBrandAndSchedule", ctx)}
}

func (_c *MockLedgerStore_ListCampaignsWithBrandAndSchedule_Call) Run(run func(ctx context.Context)) *MockLedgerStore_ListCampaignsWithBrandAndSchedule_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context))
	})
	return _c
}

func (_c *MockLedgerStore_ListCampaignsWithBrandAndSchedule_Call) Return(_a0 []domain.Campaign, _a1 error) *MockLedgerStore_ListCampaignsWithBrandAndSchedule_Call {
	_c.Call.Return(_a0, _a1)
	return _c
}

func (_c *MockLedgerStore_ListCampaignsWithBrandAndSchedule_Call) RunAndReturn(run func(context.Context) ([]domain.Campaign, error)) *MockLedgerStore_ListCampaignsWithBrandAndSchedule_Call {
	_c.Call.Return(run)
	return _c
}

// SaveBrand provides a mock function with given fields: ctx, brand
func (_m *MockLedgerStore) SaveBrand(ctx context.Context, brand domain.Brand) error {
	ret := _m.Called(ctx, brand)

	if len(ret) == 0 {
		panic("no return value specified for SaveBrand")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Brand) error); ok {
		r0 = rf(ctx, brand)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockLedgerStore_SaveBrand_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveBrand'
type MockLedgerStore_SaveBrand_Call struct {
	*mock.Call
}

// SaveBrand is a helper method to define mock.On call
//   - ctx context.Context
//   - brand domain.Brand
func (_e *MockLedgerStore_Expecter) SaveBrand(ctx interface{}, brand interface{}) *MockLedgerStore_SaveBrand_Call {
	return &MockLedgerStore_SaveBrand_Call{Call: _e.mock.On("SaveBrand", ctx, brand)}
}

func (_c *MockLedgerStore_SaveBrand_Call) Run(run func(ctx context.Context, brand domain.Brand)) *MockLedgerStore_SaveBrand_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Brand))
	})
	return _c
}

func (_c *MockLedgerStore_SaveBrand_Call) Return(_a0 error) *MockLedgerStore_SaveBrand_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockLedgerStore_SaveBrand_Call) RunAndReturn(run func(context.Context, domain.Brand) error) *MockLedgerStore_SaveBrand_Call {
	_c.Call.Return(run)
	return _c
}

// SaveCampaign provides a mock function with given fields: ctx, campaign
func (_m *MockLedgerStore) SaveCampaign(ctx context.Context, campaign domain.Campaign) error {
	ret := _m.Called(ctx, campaign)

	if len(ret) == 0 {
		panic("no return value specified for SaveCampaign")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, domain.Campaign) error); ok {
		r0 = rf(ctx, campaign)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockLedgerStore_SaveCampaign_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'SaveCampaign'
type MockLedgerStore_SaveCampaign_Call struct {
	*mock.Call
}

// SaveCampaign is a helper method to define mock.On call
//   - ctx context.Context
//   - campaign domain.Campaign
func (_e *MockLedgerStore_Expecter) SaveCampaign(ctx interface{}, campaign interface{}) *MockLedgerStore_SaveCampaign_Call {
	return &MockLedgerStore_SaveCampaign_Call{Call: _e.mock.On("SaveCampaign", ctx, campaign)}
}

func (_c *MockLedgerStore_SaveCampaign_Call) Run(run func(ctx context.Context, campaign domain.Campaign)) *MockLedgerStore_SaveCampaign_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(domain.Campaign))
	})
	return _c
}

func (_c *MockLedgerStore_SaveCampaign_Call) Return(_a0 error) *MockLedgerStore_SaveCampaign_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockLedgerStore_SaveCampaign_Call) RunAndReturn(run func(context.Context, domain.Campaign) error) *MockLedgerStore_SaveCampaign_Call {
	_c.Call.Return(run)
	return _c
}

// Transact provides a mock function with given fields: ctx, fn
func (_m *MockLedgerStore) Transact(ctx context.Context, fn func(context.Context) error) error {
	ret := _m.Called(ctx, fn)

	if len(ret) == 0 {
		panic("no return value specified for Transact")
	}

	var r0 error
	if rf, ok := ret.Get(0).(func(context.Context, func(context.Context) error) error); ok {
		r0 = rf(ctx, fn)
	} else {
		r0 = ret.Error(0)
	}

	return r0
}

// MockLedgerStore_Transact_Call is a *mock.Call that shadows Run/Return methods with type explicit version for method 'Transact'
type MockLedgerStore_Transact_Call struct {
	*mock.Call
}

// Transact is a helper method to define mock.On call
//   - ctx context.Context
//   - fn func(context.Context) error
func (_e *MockLedgerStore_Expecter) Transact(ctx interface{}, fn interface{}) *MockLedgerStore_Transact_Call {
	return &MockLedgerStore_Transact_Call{Call: _e.mock.On("Transact", ctx, fn)}
}

func (_c *MockLedgerStore_Transact_Call) Run(run func(ctx context.Context, fn func(context.Context) error)) *MockLedgerStore_Transact_Call {
	_c.Call.Run(func(args mock.Arguments) {
		run(args[0].(context.Context), args[1].(func(context.Context) error))
	})
	return _c
}

func (_c *MockLedgerStore_Transact_Call) Return(_a0 error) *MockLedgerStore_Transact_Call {
	_c.Call.Return(_a0)
	return _c
}

func (_c *MockLedgerStore_Transact_Call) RunAndReturn(run func(context.Context, func(context.Context) error) error) *MockLedgerStore_Transact_Call {
	_c.Call.Return(run)
	return _c
}

// NewMockLedgerStore creates a new instance of MockLedgerStore. It also registers a testing interface on the mock and a cleanup function to assert the mocks expectations.
// The first argument is typically a *testing.T value.
func NewMockLedgerStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockLedgerStore {
	mock := &MockLedgerStore{}
	mock.Mock.Test(t)

	t.Cleanup(func() { mock.AssertExpectations(t) })

	return mock
}
