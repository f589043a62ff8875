package seeds

func SeedAll() error {
	if err := SeedStates(); err != nil {
		return err
	}
	return nil
}
