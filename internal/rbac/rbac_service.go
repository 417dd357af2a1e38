package rbac

import (
	"sync"

	"github.com/casbin/casbin/v2"
	"github.com/casbin/casbin/v2/model"
	"go.uber.org/zap"
)

const (
	RoleEmployee  = "EMPLOYEE"
	RoleManager   = "MANAGER"
	RoleExecutive = "EXECUTIVE"
)

// Model keeps requests role-based: the subject is the actor's role claim,
// not the actor id. Higher roles inherit lower ones through g.
const casbinModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = g(r.sub, p.sub) && r.obj == p.obj && r.act == p.act
`

// policies is the closed permission table for the three roles.
var policies = [][3]string{
	{RoleEmployee, "attendance", "read"},
	{RoleEmployee, "leave", "read"},
	{RoleEmployee, "leave", "create"},
	{RoleEmployee, "task", "read"},
	{RoleEmployee, "task", "create"},
	{RoleEmployee, "task", "update"},
	{RoleEmployee, "report", "read"},
	{RoleEmployee, "dashboard", "read"},
	{RoleEmployee, "meeting", "read"},
	{RoleEmployee, "meeting", "create"},
	{RoleEmployee, "employee", "read"},

	{RoleManager, "attendance", "override"},
	{RoleManager, "leave", "decide"},
	{RoleManager, "task", "approve"},
	{RoleManager, "task", "assign"},
	{RoleManager, "report", "generate"},
	{RoleManager, "report", "amend"},
	{RoleManager, "meeting", "update"},
	{RoleManager, "employee", "create"},
	{RoleManager, "employee", "update"},

	{RoleExecutive, "employee", "delete"},
}

var roleInheritance = [][2]string{
	{RoleManager, RoleEmployee},
	{RoleExecutive, RoleManager},
}

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	Enforce(role, resource, action string) (bool, error)
}

type service struct {
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
}

func NewService(logger ...*zap.Logger) (Service, error) {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}

	m, err := model.NewModelFromString(casbinModel)
	if err != nil {
		return nil, err
	}
	enforcer, err := casbin.NewEnforcer(m)
	if err != nil {
		return nil, err
	}

	for _, p := range policies {
		if _, err := enforcer.AddPolicy(p[0], p[1], p[2]); err != nil {
			return nil, err
		}
	}
	for _, g := range roleInheritance {
		if _, err := enforcer.AddGroupingPolicy(g[0], g[1]); err != nil {
			return nil, err
		}
	}

	return &service{enforcer: enforcer, logger: l}, nil
}

func (s *service) Enforce(role, resource, action string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	allowed, err := s.enforcer.Enforce(role, resource, action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", role),
			zap.String("resource", resource),
			zap.String("action", action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", role),
		zap.String("resource", resource),
		zap.String("action", action),
		zap.Bool("allowed", allowed),
	)
	return allowed, nil
}
