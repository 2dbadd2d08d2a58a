package repository

import (
	bookingRepo "fixly/database/repository/booking"
	handymanRepo "fixly/database/repository/handyman"
	taskRepo "fixly/database/repository/task"
	userRepo "fixly/database/repository/user"
)

// Re-export the HandymanRepository interface and constructor.
type HandymanRepository = handymanRepo.HandymanRepository

type SearchCriteria = handymanRepo.SearchCriteria

var NewMongoHandymanRepo = handymanRepo.NewMongoHandymanRepo

// Re-export the TaskRepository interface and constructor.
type TaskRepository = taskRepo.TaskRepository

var NewMongoTaskRepo = taskRepo.NewMongoTaskRepo

// Re-export the BookingRepository interface and constructor.
type BookingRepository = bookingRepo.BookingRepository

var NewMongoBookingRepo = bookingRepo.NewMongoBookingRepo

// Re-export the UserRepository interface and constructor.
type UserRepository = userRepo.UserRepository

var NewMongoUserRepo = userRepo.NewMongoUserRepo
