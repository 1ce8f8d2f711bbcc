package services

// Services defined in this package:
// - AuthService: registration and login
// - UserService: profiles, follows and saved ideas
// - IdeaService: idea lifecycle, likes, comments, evaluations and branches
// - DiscoveryService: category and popular-tag listings
