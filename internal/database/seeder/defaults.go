package seeder

func Defaults() []Seeder {
	return []Seeder{
		WorkersSeeder{},
		RolesSeeder{},
	}
}
