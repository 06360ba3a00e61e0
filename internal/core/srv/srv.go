package srv

type Srv struct {
	ai *AI
}

func SetupSrvs(opts ...ApplyFunc) *Srv {
	a := &Srv{}

	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (s *Srv) AI() *AI {
	return s.ai
}

func (s *Srv) Close() error {
	if s.ai != nil {
		return s.ai.Close()
	}
	return nil
}

type ApplyFunc func(s *Srv)

func ApplyAI(cfg AIConfig) ApplyFunc {
	return func(s *Srv) {
		s.ai = SetupAI(cfg)
	}
}
