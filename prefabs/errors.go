package prefabs

import "errors"

var ErrInvalidTuning = errors.New("prefabs: invalid tuning")
