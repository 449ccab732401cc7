package employee

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/gilrsantana/pontolegal/internal/domain/employee"
	employeemocks "github.com/gilrsantana/pontolegal/internal/domain/employee/mocks"
	"github.com/gilrsantana/pontolegal/internal/domain/workingday"
	workingdaymocks "github.com/gilrsantana/pontolegal/internal/domain/workingday/mocks"
	"github.com/gilrsantana/pontolegal/internal/pkg/validator"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type EmployeeServiceSuite struct {
	suite.Suite
	employees   *employeemocks.MockEmployeeRepository
	workingDays *workingdaymocks.MockRepository
	service     *EmployeeServiceImpl
}

func TestEmployeeServiceSuite(t *testing.T) {
	suite.Run(t, new(EmployeeServiceSuite))
}

func (s *EmployeeServiceSuite) SetupTest() {
	ctrl := gomock.NewController(s.T())
	s.employees = employeemocks.NewMockEmployeeRepository(ctrl)
	s.workingDays = workingdaymocks.NewMockRepository(ctrl)
	s.service = NewEmployeeService(s.employees, s.workingDays, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *EmployeeServiceSuite) TestCreateEmployee_Success() {
	s.workingDays.EXPECT().GetByID(gomock.Any(), "wd-1").Return(workingday.WorkingDay{ID: "wd-1"}, nil)
	s.employees.EXPECT().Create(gomock.Any(), employee.Employee{FullName: "Ana Souza", WorkingDayID: "wd-1"}).
		Return(employee.Employee{ID: "emp-1", FullName: "Ana Souza", WorkingDayID: "wd-1"}, nil)

	resp, err := s.service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{FullName: "  Ana Souza ", WorkingDayID: "wd-1"})

	s.Require().NoError(err)
	s.Equal("emp-1", resp.ID)
	s.Equal("wd-1", resp.WorkingDayID)
}

func (s *EmployeeServiceSuite) TestCreateEmployee_Validation() {
	_, err := s.service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{FullName: "Al"})

	var errs validator.ValidationErrors
	s.Require().True(errors.As(err, &errs))
	s.Len(errs, 2)
}

func (s *EmployeeServiceSuite) TestCreateEmployee_UnknownWorkingDay() {
	s.workingDays.EXPECT().GetByID(gomock.Any(), "wd-x").Return(workingday.WorkingDay{}, workingday.ErrWorkingDayNotFound)

	_, err := s.service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{FullName: "Ana Souza", WorkingDayID: "wd-x"})

	s.ErrorIs(err, workingday.ErrWorkingDayNotFound)
}

func (s *EmployeeServiceSuite) TestCreateEmployee_StorageFailure() {
	s.workingDays.EXPECT().GetByID(gomock.Any(), "wd-1").Return(workingday.WorkingDay{ID: "wd-1"}, nil)
	s.employees.EXPECT().Create(gomock.Any(), gomock.Any()).Return(employee.Employee{}, errors.New("timeout"))

	_, err := s.service.CreateEmployee(context.Background(), employee.CreateEmployeeRequest{FullName: "Ana Souza", WorkingDayID: "wd-1"})

	s.ErrorIs(err, employee.ErrAddEmployee)
}

func (s *EmployeeServiceSuite) TestAssignWorkingDay_Success() {
	s.workingDays.EXPECT().GetByID(gomock.Any(), "wd-2").Return(workingday.WorkingDay{ID: "wd-2"}, nil)
	s.employees.EXPECT().UpdateWorkingDay(gomock.Any(), "emp-1", "wd-2").Return(nil)
	s.employees.EXPECT().GetByID(gomock.Any(), "emp-1").Return(employee.Employee{ID: "emp-1", WorkingDayID: "wd-2"}, nil)

	resp, err := s.service.AssignWorkingDay(context.Background(), employee.AssignWorkingDayRequest{EmployeeID: "emp-1", WorkingDayID: "wd-2"})

	s.Require().NoError(err)
	s.Equal("wd-2", resp.WorkingDayID)
}

func (s *EmployeeServiceSuite) TestAssignWorkingDay_UnknownEmployee() {
	s.workingDays.EXPECT().GetByID(gomock.Any(), "wd-2").Return(workingday.WorkingDay{ID: "wd-2"}, nil)
	s.employees.EXPECT().UpdateWorkingDay(gomock.Any(), "emp-x", "wd-2").Return(employee.ErrEmployeeNotFound)

	_, err := s.service.AssignWorkingDay(context.Background(), employee.AssignWorkingDayRequest{EmployeeID: "emp-x", WorkingDayID: "wd-2"})

	s.ErrorIs(err, employee.ErrEmployeeNotFound)
}

func (s *EmployeeServiceSuite) TestGetEmployee_NotFound() {
	s.employees.EXPECT().GetByID(gomock.Any(), "emp-x").Return(employee.Employee{}, employee.ErrEmployeeNotFound)

	_, err := s.service.GetEmployee(context.Background(), "emp-x")

	s.ErrorIs(err, employee.ErrEmployeeNotFound)
}
