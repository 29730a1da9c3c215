package sqlinline

const QInsertGoal = `--sql 966560c1-8fbd-4faf-b27d-630dcf8fd4bb
insert into goals (id, user_id, template_id, title, category, emoji, start_day, status, created_at, updated_at)
values (gen_random_uuid(), $1::uuid, nullif($2::text, '')::uuid, $3::text, $4::text, $5::text, $6::date, 'active', now(), now())
returning id, user_id, template_id::text, title, category, emoji, start_day::text, status, created_at, updated_at, archived_at;
`

const QSelectGoalByID = `--sql 22d0f4ca-f819-4161-aa80-73882b651035
select id, user_id, template_id::text, title, category, emoji, start_day::text, status, created_at, updated_at, archived_at
from goals
where id = $1::uuid
  and user_id = $2::uuid
limit 1;
`

const QListGoalsByUser = `--sql 838cd92e-9cc8-4944-ba01-50352f13be51
select id, user_id, template_id::text, title, category, emoji, start_day::text, status, created_at, updated_at, archived_at
from goals
where user_id = $1::uuid
  and ($2::text = '' or status = $2::text)
order by created_at asc;
`

const QUpdateGoal = `--sql 41186b88-7c79-4657-8f88-95cf33a4cccc
update goals set
    title = $3::text,
    category = $4::text,
    emoji = $5::text,
    updated_at = now()
where id = $1::uuid
  and user_id = $2::uuid
returning id, user_id, template_id::text, title, category, emoji, start_day::text, status, created_at, updated_at, archived_at;
`

const QArchiveGoal = `--sql e49a2813-f950-46e1-a3ff-feece9954c79
update goals set
    status = 'archived',
    archived_at = now(),
    updated_at = now()
where id = $1::uuid
  and user_id = $2::uuid
  and status = 'active';
`
