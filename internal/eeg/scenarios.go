package eeg

// DeriveCommand picks the command label the specialized datasets use:
// dominated by beta means FOCUS, dominated by alpha means RELAX.
func DeriveCommand(p Powers) Command {
	switch {
	case p.Beta > 0.6:
		return CommandFocus
	case p.Alpha > 0.6:
		return CommandRelax
	default:
		return CommandNone
	}
}

func mustSchedule(windows []Window) *Schedule {
	for i, w := range windows {
		powers, err := w.Amps.Normalize()
		if err != nil {
			panic(err) // static data
		}
		windows[i].Command = DeriveCommand(powers)
	}
	s, err := NewSchedule(windows)
	if err != nil {
		panic(err)
	}
	return s
}

// VisualSchedule sweeps alpha power from strong to very weak so the
// visual prediction walks through all three categories.
func VisualSchedule() *Schedule {
	return mustSchedule([]Window{
		{From: 0, To: 2, Amps: BandAmplitudes{Theta: 15, Alpha: 55, Beta: 30, Gamma: 10}},
		{From: 2, To: 4, Amps: BandAmplitudes{Theta: 12, Alpha: 65, Beta: 28, Gamma: 8}},
		{From: 4, To: 6, Amps: BandAmplitudes{Theta: 18, Alpha: 35, Beta: 32, Gamma: 12}},
		{From: 6, To: 8, Amps: BandAmplitudes{Theta: 25, Alpha: 18, Beta: 38, Gamma: 15}},
		{From: 8, To: 10, Amps: BandAmplitudes{Theta: 30, Alpha: 12, Beta: 40, Gamma: 18}},
	})
}

// MotorSchedule sweeps beta power from strong to very weak.
func MotorSchedule() *Schedule {
	return mustSchedule([]Window{
		{From: 0, To: 2, Amps: BandAmplitudes{Theta: 12, Alpha: 35, Beta: 60, Gamma: 10}},
		{From: 2, To: 4, Amps: BandAmplitudes{Theta: 15, Alpha: 38, Beta: 45, Gamma: 12}},
		{From: 4, To: 6, Amps: BandAmplitudes{Theta: 20, Alpha: 42, Beta: 30, Gamma: 15}},
		{From: 6, To: 8, Amps: BandAmplitudes{Theta: 25, Alpha: 48, Beta: 18, Gamma: 18}},
		{From: 8, To: 10, Amps: BandAmplitudes{Theta: 30, Alpha: 52, Beta: 10, Gamma: 20}},
	})
}

// AttentionSchedule sweeps the theta/beta ratio from about 0.5 to 5.0.
func AttentionSchedule() *Schedule {
	return mustSchedule([]Window{
		{From: 0, To: 2, Amps: BandAmplitudes{Theta: 10, Alpha: 35, Beta: 50, Gamma: 12}},
		{From: 2, To: 4, Amps: BandAmplitudes{Theta: 20, Alpha: 38, Beta: 40, Gamma: 15}},
		{From: 4, To: 6, Amps: BandAmplitudes{Theta: 35, Alpha: 40, Beta: 30, Gamma: 12}},
		{From: 6, To: 8, Amps: BandAmplitudes{Theta: 50, Alpha: 42, Beta: 20, Gamma: 10}},
		{From: 8, To: 10, Amps: BandAmplitudes{Theta: 60, Alpha: 45, Beta: 12, Gamma: 8}},
	})
}
